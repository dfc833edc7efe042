// Package cache memoizes resolved requirement manifests. Resolution is pure,
// so identical order payloads may be replayed from cache; the key is derived
// from the full payload, never just the order number, so any collaborator
// change busts the entry.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/grupoom/checking-central/internal/model"
)

// ManifestCache is a TTL cache of requirement manifests with a memory layer
// and an optional disk layer for reuse across process restarts.
type ManifestCache struct {
	memory  *gocache.Cache
	disk    *diskStore // nil when no directory was configured
	diskTTL time.Duration
}

// New creates a manifest cache. dir may be empty to keep the cache
// memory-only.
func New(memoryTTL time.Duration, dir string, diskTTL time.Duration) *ManifestCache {
	c := &ManifestCache{
		memory:  gocache.New(memoryTTL, 10*time.Minute),
		diskTTL: diskTTL,
	}
	if dir != "" {
		c.disk = &diskStore{dir: dir}
	}
	return c
}

// Key derives the cache key for an order payload.
func Key(order model.OrderRecord) string {
	payload, err := json.Marshal(order)
	if err != nil {
		// Orders come from decoded JSON; re-encoding them cannot fail in
		// practice, but a degenerate key only costs a cache miss.
		payload = []byte(order.Number)
	}
	sum := sha256.Sum256(payload)
	return "checking:v1:" + hex.EncodeToString(sum[:])
}

// Get returns the cached manifest for key, checking memory first and
// promoting disk hits.
func (c *ManifestCache) Get(key string) (model.RequirementManifest, bool) {
	if val, found := c.memory.Get(key); found {
		if m, ok := val.(model.RequirementManifest); ok {
			return m, true
		}
	}

	if c.disk != nil {
		if data, found := c.disk.get(key); found {
			var m model.RequirementManifest
			if err := json.Unmarshal(data, &m); err == nil {
				c.memory.SetDefault(key, m)
				return m, true
			}
			_ = c.disk.delete(key)
		}
	}

	return model.RequirementManifest{}, false
}

// Put stores a manifest in both layers.
func (c *ManifestCache) Put(key string, m model.RequirementManifest) {
	c.memory.SetDefault(key, m)

	if c.disk != nil {
		if data, err := json.Marshal(m); err == nil {
			_ = c.disk.set(key, data, c.diskTTL)
		}
	}
}

// Clear drops every cached manifest.
func (c *ManifestCache) Clear() error {
	c.memory.Flush()
	if c.disk != nil {
		return c.disk.clear()
	}
	return nil
}
