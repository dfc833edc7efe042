// Package manifest combines the resolved media type, the gate decision, and
// the classified locations into the requirement manifest callers consume.
package manifest

import (
	"fmt"

	"github.com/grupoom/checking-central/internal/catalog"
	"github.com/grupoom/checking-central/internal/model"
)

// Build assembles the manifest for one order query.
//
// A blocked gate still carries the decision for caller messaging, but no
// slots: nothing is required when nothing may be submitted. Per-location
// slots apply only when the media type carries the flag and classification
// yielded at least one address; otherwise the type's default slot count is
// the fallback.
func Build(order model.OrderRecord, entry catalog.Entry, decision model.GateDecision, locations []model.LocationRecord) model.RequirementManifest {
	m := model.RequirementManifest{
		Order:               order.Number,
		MediaCode:           entry.Code,
		MediaLabel:          entry.Label,
		Gate:                decision,
		NeedsInsertionCount: entry.NeedsInsertionCount,
		NeedsVehicleMarking: entry.NeedsVehicleMarking,
	}

	if !decision.Allowed {
		return m
	}

	if entry.PerLocationEvidence && len(locations) > 0 {
		m.Locations = locations
		for _, loc := range locations {
			m.Slots = append(m.Slots, loc.Slots...)
		}
		return m
	}

	m.Slots = defaultSlots(entry)
	return m
}

// defaultSlots builds the non-per-location evidence slots for a media type.
func defaultSlots(entry catalog.Entry) []model.EvidenceSlot {
	slots := make([]model.EvidenceSlot, 0, entry.DefaultSlots)
	for i := 1; i <= entry.DefaultSlots; i++ {
		label := "Comprovante de Veiculação"
		if entry.DefaultSlots > 1 {
			label = fmt.Sprintf("Comprovante de Veiculação %d", i)
		}
		slots = append(slots, model.EvidenceSlot{
			Key:      fmt.Sprintf("comprovante_%d", i),
			Label:    label,
			Required: true,
		})
	}
	return slots
}
