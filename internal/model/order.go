package model

// OrderRecord is the projection of a purchase order (PI) as the external
// order catalog returns it. Field presence and shape are not guaranteed by
// the collaborator: the status string may be empty or unrecognized, the media
// code may be a synonym, and the location data may arrive as a text blob, a
// string array, an array of structured entries, or a wrapper object.
type OrderRecord struct {
	Number      string `json:"n_pi"`
	Client      string `json:"cliente,omitempty"`
	Campaign    string `json:"campanha,omitempty"`
	Product     string `json:"produto,omitempty"`
	Period      string `json:"periodo,omitempty"`
	Vehicle     string `json:"veiculo,omitempty"`
	VehicleCNPJ string `json:"cnpj,omitempty"`

	// MediaCode is the raw media-type code, possibly a synonym or garbage.
	MediaCode string `json:"meio"`

	// CheckingStatus is the raw processing-status string, possibly empty.
	CheckingStatus string `json:"status_checking,omitempty"`

	// Locations and RawLocations carry the location listing in whatever
	// shape the catalog produced. Decoded as-is; the classifier unifies.
	Locations    any `json:"enderecos,omitempty"`
	RawLocations any `json:"enderecos_raw,omitempty"`

	// CanSubmit is the collaborator's submission-limit signal. Absent means
	// unrestricted. StatusNote carries the catalog's own wording for a
	// limit block, shown in place of the default message when present.
	CanSubmit    *bool  `json:"can_submit,omitempty"`
	IsComplement bool   `json:"is_complement,omitempty"`
	StatusNote   string `json:"status_message,omitempty"`
}

// LocationData returns the raw location payload to classify, preferring the
// structured field over the raw one.
func (o OrderRecord) LocationData() any {
	if o.Locations != nil {
		return o.Locations
	}
	return o.RawLocations
}

// LimitReached reports whether the catalog flagged the order as having
// exhausted its submission allowance.
func (o OrderRecord) LimitReached() bool {
	return o.CanSubmit != nil && !*o.CanSubmit
}
