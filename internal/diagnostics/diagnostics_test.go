package diagnostics

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/ifcbridge/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTee_SlogAndRecorder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	rec := &Recorder{}
	sink := Tee{SlogSink{}, rec}

	// --- Act ---
	sink.Report(ctx, 12, "Direction has zero length.", false)
	sink.Report(ctx, 40, "Material could not be created.", true)

	// --- Assert ---
	want := []Entry{
		{Source: 12, Message: "Direction has zero length."},
		{Source: 40, Message: "Material could not be created.", IsError: true},
	}
	if diff := cmp.Diff(want, rec.Entries()); diff != "" {
		t.Errorf("recorded entries mismatch (-want +got):\n%s", diff)
	}

	warnings, errs := rec.Counts()
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 1, errs)

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "entity=#12")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "entity=#40")
}
