// Package pipeline orchestrates one resolution pass: media-type resolution,
// gate decision, location classification, and manifest assembly.
package pipeline

import (
	"github.com/grupoom/checking-central/internal/cache"
	"github.com/grupoom/checking-central/internal/catalog"
	"github.com/grupoom/checking-central/internal/classify"
	"github.com/grupoom/checking-central/internal/gate"
	"github.com/grupoom/checking-central/internal/manifest"
	"github.com/grupoom/checking-central/internal/model"
)

// Resolver runs the resolution core over order records. The core itself is
// pure and stateless; the resolver only adds the optional result cache on
// top.
type Resolver struct {
	classifier *classify.Classifier
	cache      *cache.ManifestCache // nil when caching is disabled
}

// NewResolver creates a resolver from configuration.
func NewResolver(cfg *model.Config) *Resolver {
	r := &Resolver{classifier: classify.New()}
	if cfg.Cache.Enabled {
		r.cache = cache.New(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return r
}

// Resolve computes the requirement manifest for one order record. Identical
// input always yields an identical manifest; a later call's result simply
// supersedes an earlier one, so serving repeats from cache is safe.
func (r *Resolver) Resolve(order model.OrderRecord) model.RequirementManifest {
	var key string
	if r.cache != nil {
		key = cache.Key(order)
		if m, found := r.cache.Get(key); found {
			return m
		}
	}

	entry := catalog.Resolve(order.MediaCode)
	decision := gate.Decide(order)

	var locations []model.LocationRecord
	if entry.PerLocationEvidence {
		locations = r.classifier.Extract(order.LocationData())
	}

	m := manifest.Build(order, entry, decision, locations)

	if r.cache != nil {
		r.cache.Put(key, m)
	}
	return m
}
