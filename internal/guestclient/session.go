package guestclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"guestpass/internal/domain/constants"
	"guestpass/internal/errors"
)

// SessionStore is the client-side key-value storage behind the access cache
// and the fingerprint seed.
type SessionStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// SessionKey is the storage key of the cached identity for token.
func SessionKey(token string) string {
	return constants.SessionKeyPrefix + token
}

// AccessCache remembers the last identity proven for a token. It only lets
// the client skip a prompt; the server re-checks every cached identity.
type AccessCache struct {
	store SessionStore
}

// NewAccessCache keeps cached identities in store.
func NewAccessCache(store SessionStore) *AccessCache {
	return &AccessCache{store: store}
}

// Identity returns the cached identity of token, or "" when none is stored.
func (c *AccessCache) Identity(token string) (string, error) {
	identity, ok, err := c.store.Get(SessionKey(token))
	if err != nil || !ok {
		return "", err
	}

	return identity, nil
}

// Remember caches identity after the server granted access with it.
func (c *AccessCache) Remember(token, identity string) error {
	return c.store.Set(SessionKey(token), identity)
}

// Forget drops the cached identity, as the server asks when it no longer matches.
func (c *AccessCache) Forget(token string) error {
	return c.store.Delete(SessionKey(token))
}

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value of key and whether it was set.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]

	return value, ok, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

// Delete removes key. Missing keys are ignored.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}

// FileStore persists values as a JSON object. Writes replace the file
// through a rename so a crash never leaves it half written.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore reads and writes path; the file is created on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads key from the file. A missing file holds no keys.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}

	value, ok := values[key]

	return value, ok, nil
}

// Set rewrites the file with key set to value.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	return s.save(values)
}

// Delete rewrites the file without key, leaving it untouched when key is absent.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)

	return s.save(values)
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "decode session file %s", s.path)
	}

	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode session file")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return errors.Wrap(err, "create temp session file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write session file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close session file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace session file")
}
