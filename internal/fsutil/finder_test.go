package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// Arrange
	root := t.TempDir()
	for _, name := range []string{"b.hcl", "a/UPPER.HCL", "a/notes.txt", ".git/config.hcl", "c/d/deep.hcl"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	// Act
	files, err := FindFilesByExtension(root, ".hcl")

	// Assert
	require.NoError(t, err)
	want := []string{
		filepath.Join(root, "a", "UPPER.HCL"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "c", "d", "deep.hcl"),
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestFindFilesByExtension_EmptyExtension(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(t.TempDir(), "")
	require.Error(t, err)
}
