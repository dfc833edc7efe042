package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// diskStore persists cache entries as single JSON files with an embedded
// expiry. Corrupt or expired files read as misses and are removed lazily.
type diskStore struct {
	dir string
}

type diskEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *diskStore) get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(s.path(key))
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(s.path(key))
		return nil, false
	}

	return entry.Data, true
}

func (s *diskStore) set(key string, value []byte, ttl time.Duration) error {
	data, err := json.Marshal(diskEntry{Data: value, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *diskStore) delete(key string) error {
	return os.Remove(s.path(key))
}

func (s *diskStore) clear() error {
	return os.RemoveAll(s.dir)
}

func (s *diskStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
