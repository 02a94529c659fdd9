package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSetGetRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Get("chave")
	assert.False(t, ok)

	require.NoError(t, store.Set("chave", "valor"))
	value, ok := store.Get("chave")
	require.True(t, ok)
	assert.Equal(t, "valor", value)

	require.NoError(t, store.Remove("chave"))
	_, ok = store.Get("chave")
	assert.False(t, ok)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("produtos", `[{"id":"P-1"}]`))
	require.NoError(t, store.Set("clientes", `[]`))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	value, ok := reopened.Get("produtos")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"P-1"}]`, value)
}

func TestFileStoreStartsEmptyWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nao-existe.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Get("qualquer")
	assert.False(t, ok)

	// O arquivo só é criado na primeira escrita
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrompido"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dados.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "apenas o arquivo de dados deve restar")
}

func TestMemoryStoreKeys(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))

	assert.ElementsMatch(t, []string{"a", "b"}, store.Keys())
}

func TestNewFromEnvUnknownDriver(t *testing.T) {
	t.Setenv("POS_STORAGE_DRIVER", "flopetes")
	_, err := NewFromEnv()
	assert.Error(t, err)
}

func TestNewFromEnvMemory(t *testing.T) {
	t.Setenv("POS_STORAGE_DRIVER", DriverMemory)
	store, err := NewFromEnv()
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}
