package model

// EvidenceSlot is one required upload in a manifest. Key is stable across
// queries for the same order: per-location slots embed the location id,
// default slots embed their position.
type EvidenceSlot struct {
	Key        string `json:"field_name"`
	Label      string `json:"label"`
	Required   bool   `json:"required"`
	LocationID string `json:"location_id,omitempty"`
	Address    string `json:"address,omitempty"`
}

// LocationRecord is one physical placement location extracted from an
// order's raw listing. IDs are sequential in classification survival order
// and never reordered.
type LocationRecord struct {
	ID      string         `json:"id"`
	Address string         `json:"endereco"`
	Slots   []EvidenceSlot `json:"campos_upload"`

	// Heuristic names the accept rule that matched, e.g. "street:rua".
	Heuristic string `json:"heuristic,omitempty"`
}

// RequirementManifest describes exactly which evidence slots must be filled
// for an order, and whether submission is currently permitted at all. It is
// the only value the resolution core exposes to callers.
type RequirementManifest struct {
	Order      string `json:"n_pi,omitempty"`
	MediaCode  string `json:"meio"`
	MediaLabel string `json:"meio_label"`

	Gate GateDecision `json:"gate"`

	// Locations is empty unless the media type is per-location and the
	// classifier yielded at least one address.
	Locations []LocationRecord `json:"enderecos,omitempty"`

	// Slots is empty when the gate blocks submission.
	Slots []EvidenceSlot `json:"campos"`

	NeedsInsertionCount bool `json:"requires_insertion_total"`
	NeedsVehicleMarking bool `json:"requires_vehicle_marking"`
}
