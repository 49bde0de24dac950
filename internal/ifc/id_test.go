package ifc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		raw     string
		want    ID
		wantErr bool
	}{
		{name: "hash prefix", raw: "#42", want: 42},
		{name: "bare number", raw: "7", want: 7},
		{name: "surrounding space", raw: " #3 ", want: 3},
		{name: "zero", raw: "#0", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "garbage", raw: "#abc", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseID(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLogical(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]Logical{
		".T.":     True,
		"true":    True,
		"F":       False,
		".f.":     False,
		"Unknown": Unknown,
		".U.":     Unknown,
	} {
		got, err := ParseLogical(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLogical("maybe")
	require.Error(t, err)
}

func TestLogical_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ".T.", True.String())
	assert.Equal(t, ".F.", False.String())
	assert.Equal(t, ".U.", Unknown.String())
}
