package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("openai.api_key", "sk-test"))
	require.NoError(t, store.Set("search.limit", int64(5)))
	require.NoError(t, store.Set("verbose", true))
	require.NoError(t, store.Set("ask.temperature", 0.3))

	assert.Equal(t, "sk-test", store.GetString("openai.api_key"))
	assert.Equal(t, 5, store.GetInt("search.limit"))
	assert.True(t, store.GetBool("verbose"))
	assert.Equal(t, 0.3, store.GetFloat("ask.temperature"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypeMismatches(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "a string"))

	assert.Equal(t, 0, store.GetInt("key"))
	assert.Equal(t, 0.0, store.GetFloat("key"))
	assert.False(t, store.GetBool("key"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("pinecone.api_key", "pc-test"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "pc-test", reopened.GetString("pinecone.api_key"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[openai]\napi_key = \"sk-nested\"\n\n[pinecone]\nconstitution_host = \"host-a\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-nested", store.GetString("openai.api_key"))
	assert.Equal(t, "host-a", store.GetString("pinecone.constitution_host"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("anything"))
}

func TestConfigStore_RestrictedPermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("openai.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
