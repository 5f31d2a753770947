package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDir(t *testing.T) Dir {
	t.Helper()
	return Dir{Path: t.TempDir(), DoneDir: "done"}
}

func TestValidName(t *testing.T) {
	assert.NoError(t, ValidName("0 4 * * * Pay rent"))
	assert.ErrorIs(t, ValidName(""), ErrInvalid)
	assert.ErrorIs(t, ValidName("   "), ErrInvalid)
	assert.ErrorIs(t, ValidName("../escape"), ErrInvalid)
	assert.ErrorIs(t, ValidName("a/b"), ErrInvalid)
	assert.ErrorIs(t, ValidName(".."), ErrInvalid)
}

func TestCreate_Exclusive(t *testing.T) {
	d := testDir(t)
	path, err := d.Create("2026-09-01 Pay rent", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.Path, "2026-09-01 Pay rent"), path)
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, fi.Mode().IsRegular())
}

func TestCreate_CollisionLeavesFileUntouched(t *testing.T) {
	d := testDir(t)
	path := filepath.Join(d.Path, "task")
	require.NoError(t, os.WriteFile(path, []byte("precious"), 0o644))

	got, err := d.Create("task", false)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, path, got)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(b))
}

func TestCreate_ForceReplaces(t *testing.T) {
	d := testDir(t)
	path := filepath.Join(d.Path, "task")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := d.Create("task", true)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestCreate_RejectsSeparator(t *testing.T) {
	d := testDir(t)
	_, err := d.Create("../outside", false)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCompleteExact_MovesOnlyTheExactMatch(t *testing.T) {
	d := testDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(d.Path, "buy-milk"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(d.Path, "buy-milk-and-eggs"), nil, 0o644))

	require.NoError(t, d.CompleteExact("buy-milk"))

	assert.FileExists(t, filepath.Join(d.Path, "done", "buy-milk"))
	assert.NoFileExists(t, filepath.Join(d.Path, "buy-milk"))
	assert.FileExists(t, filepath.Join(d.Path, "buy-milk-and-eggs"))
	assert.NoFileExists(t, filepath.Join(d.Path, "done", "buy-milk-and-eggs"))
}

func TestCompleteExact_CreatesDoneDirOnDemand(t *testing.T) {
	d := testDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(d.Path, "task"), []byte("body"), 0o644))
	assert.NoDirExists(t, filepath.Join(d.Path, "done"))

	require.NoError(t, d.CompleteExact("task"))

	b, err := os.ReadFile(filepath.Join(d.Path, "done", "task"))
	require.NoError(t, err)
	assert.Equal(t, "body", string(b))
}

func TestCompleteExact_NotFoundLeavesDirUnchanged(t *testing.T) {
	d := testDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(d.Path, "other"), nil, 0o644))

	err := d.CompleteExact("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	entries, rerr := os.ReadDir(d.Path)
	require.NoError(t, rerr)
	require.Len(t, entries, 1)
	assert.Equal(t, "other", entries[0].Name())
}

func TestCompleteExact_DirectoryIsNotATask(t *testing.T) {
	d := testDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(d.Path, "subdir"), 0o755))

	err := d.CompleteExact("subdir")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.DirExists(t, filepath.Join(d.Path, "subdir"))
}
