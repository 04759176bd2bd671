package builder

import (
	"aocbuilder/lib/testutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDirIdempotent(t *testing.T) {
	tel := &testutil.RecordingAPI{}
	path := filepath.Join(t.TempDir(), "AdventOfCode2015")

	require.NoError(t, EnsureDir(path, tel))
	require.NoError(t, EnsureDir(path, tel))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, []string{report_folder_exists}, filterIDs(tel.IDs("debug"), report_folder_exists))
}

func TestEnsureDirOtherErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "day01")
	err := EnsureDir(path, &testutil.RecordingAPI{})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func filterIDs(ids []string, id string) []string {
	var out []string
	for _, i := range ids {
		if i == id {
			out = append(out, i)
		}
	}
	return out
}
