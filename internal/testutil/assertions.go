package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/stretchr/testify/require"
)

// AssertWarned checks that exactly count warnings naming source were reported.
func AssertWarned(t *testing.T, result *HarnessResult, source ifc.ID, substr string, count int) {
	t.Helper()

	got := 0
	for _, e := range result.Diagnostics.Entries() {
		if e.Source == source && !e.IsError && strings.Contains(e.Message, substr) {
			got++
		}
	}
	require.Equal(t, count, got, "warnings for %s containing %q", source, substr)
}

// AssertLogged checks that the captured log output contains substr.
func AssertLogged(t *testing.T, result *HarnessResult, substr string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, substr),
		"expected log output to contain %q", substr,
	)
}
