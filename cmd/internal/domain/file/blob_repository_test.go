package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobRepository_LoadMissing(t *testing.T) {
	repo, err := NewBlobRepository(t.TempDir())
	require.NoError(t, err)

	value, err := repo.Load("consultasMedicas")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestBlobRepository_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewBlobRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Save("consultasMedicas", []byte(`[{"id":1}]`)))
	require.NoError(t, repo.Save("consultasMedicas", []byte(`[]`)))

	value, err := repo.Load("consultasMedicas")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "consultasMedicas.json", entries[0].Name())
}

func TestBlobRepository_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	repo, err := NewBlobRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Save("k", []byte("v")))

	_, err = os.Stat(filepath.Join(dir, "k.json"))
	assert.NoError(t, err)
}

func TestBlobRepository_RejectsPathKeys(t *testing.T) {
	repo, err := NewBlobRepository(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape", `a\b`} {
		err := repo.Save(key, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)

		_, err = repo.Load(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestBlobRepository_FailedSaveKeepsDirectoryClean(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewBlobRepository(dir)
	require.NoError(t, err)

	// a directory in place of the blob file makes the final rename fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "k.json"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json", "keep"), nil, 0o644))

	require.Error(t, repo.Save("k", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "k.json", entries[0].Name())
}
