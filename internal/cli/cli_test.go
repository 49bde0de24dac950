package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/ifcbridge/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		want     *app.Config
		wantExit bool
		wantCode int
		wantErr  string
	}{
		{
			name: "positional path with defaults",
			args: []string{"model.hcl"},
			want: &app.Config{ModelPath: "model.hcl", LogFormat: "text", LogLevel: "info", WorkerCount: 1},
		},
		{
			name: "long flag wins over positional",
			args: []string{"-model", "a.hcl", "-settings", "s.hcl", "-workers", "4", "-log-format", "JSON", "b.hcl"},
			want: &app.Config{ModelPath: "a.hcl", SettingsPath: "s.hcl", LogFormat: "json", LogLevel: "info", WorkerCount: 4},
		},
		{
			name: "shorthand",
			args: []string{"-m", "dir", "-log-level", "debug"},
			want: &app.Config{ModelPath: "dir", LogFormat: "text", LogLevel: "debug", WorkerCount: 1},
		},
		{name: "help", args: []string{"-h"}, wantExit: true},
		{name: "no path prints usage", args: nil, wantExit: true},
		{name: "unknown flag", args: []string{"-nope"}, wantCode: 2, wantErr: "flag provided but not defined"},
		{name: "bad format", args: []string{"-log-format", "xml", "m.hcl"}, wantCode: 2, wantErr: "invalid log-format"},
		{name: "bad level", args: []string{"-log-level", "trace", "m.hcl"}, wantCode: 2, wantErr: "invalid log-level"},
		{name: "bad workers", args: []string{"-workers", "0", "m.hcl"}, wantCode: 2, wantErr: "invalid workers"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer

			cfg, exit, err := Parse(tc.args, &out)

			if tc.wantErr != "" {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, exit)
			if tc.wantExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
