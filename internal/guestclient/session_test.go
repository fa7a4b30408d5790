package guestclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "guestpass.access.abc", SessionKey("abc"))
}

func TestSessionStores(t *testing.T) {
	stores := map[string]SessionStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			cache := NewAccessCache(store)

			identity, err := cache.Identity("tok")
			require.NoError(t, err)
			assert.Empty(t, identity)

			require.NoError(t, cache.Remember("tok", "5551234"))
			require.NoError(t, cache.Remember("other", "a@b.com"))

			identity, err = cache.Identity("tok")
			require.NoError(t, err)
			assert.Equal(t, "5551234", identity)

			require.NoError(t, cache.Forget("tok"))
			require.NoError(t, cache.Forget("tok"))

			identity, err = cache.Identity("tok")
			require.NoError(t, err)
			assert.Empty(t, identity)

			identity, err = cache.Identity("other")
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", identity)
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, NewFileStore(path).Set(SessionKey("tok"), "a@b.com"))

	value, ok, err := NewFileStore(path).Get(SessionKey("tok"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", value)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileStore(path).Get("k")
	assert.Error(t, err)
}
