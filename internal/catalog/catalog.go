// Package catalog holds the static media-type reference table and resolves
// raw media codes (possibly synonyms) to canonical entries.
package catalog

import "strings"

// Entry describes one canonical media type: its display label, how many
// evidence slots a submission needs by default, and which capability flags
// apply.
type Entry struct {
	Code         string   `json:"code" yaml:"code"`
	Label        string   `json:"label" yaml:"label"`
	DefaultSlots int      `json:"default_slots" yaml:"default_slots"`
	Synonyms     []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`

	// NeedsInsertionCount marks types whose submission form asks for the
	// total number of insertions aired.
	NeedsInsertionCount bool `json:"needs_insertion_count,omitempty" yaml:"needs_insertion_count,omitempty"`

	// NeedsVehicleMarking marks types whose submission form carries the
	// vehicle-marking checkbox.
	NeedsVehicleMarking bool `json:"needs_vehicle_marking,omitempty" yaml:"needs_vehicle_marking,omitempty"`

	// PerLocationEvidence marks location-based outdoor types that require
	// one evidence set per physical placement location.
	PerLocationEvidence bool `json:"per_location_evidence,omitempty" yaml:"per_location_evidence,omitempty"`
}

// DefaultCode is the reserved catch-all entry every unmatched code resolves to.
const DefaultCode = "DEFAULT"

// entries is the reference table. Order is stable and synonym sets are
// pairwise disjoint across entries; resolution depends on both.
var entries = []Entry{
	{Code: "AT", Label: "Ativação", DefaultSlots: 1, Synonyms: []string{"PY", "EV", "MA"}},
	{Code: "BD", Label: "Busdoor/Taxidoor", DefaultSlots: 1, Synonyms: []string{"BP"}},
	{Code: "CI", Label: "Cinema", DefaultSlots: 1, Synonyms: []string{"CN", "CP"}},
	{Code: "DO", Label: "Digital Out of Home", DefaultSlots: 3, NeedsInsertionCount: true, Synonyms: []string{"PH"}},
	{Code: "FL", Label: "Frontlight", DefaultSlots: 1, PerLocationEvidence: true, Synonyms: []string{"PF", "GD"}},
	{Code: "IN", Label: "Internet", DefaultSlots: 1, Synonyms: []string{"IA", "IB", "ID", "IS", "IV", "MS", "PN", "PW"}},
	{Code: "JO", Label: "Jornal", DefaultSlots: 1, Synonyms: []string{"JN", "PJ", "GS", "GO", "FT"}},
	{Code: "MT", Label: "Metrô", DefaultSlots: 2, NeedsVehicleMarking: true, Synonyms: []string{"PM"}},
	{Code: "ME", Label: "Mídia Externa", DefaultSlots: 2, NeedsVehicleMarking: true, Synonyms: []string{"EP"}},
	{Code: "MN", Label: "Mídia Interna", DefaultSlots: 1, Synonyms: []string{"PI"}},
	{Code: "OD", Label: "Outdoor", DefaultSlots: 1, PerLocationEvidence: true, Synonyms: []string{"PO"}},
	{Code: "PC", Label: "Patrocínio", DefaultSlots: 1},
	{Code: "RD", Label: "Rádio", DefaultSlots: 1, Synonyms: []string{"RA", "RF", "PD", "PA"}},
	{Code: "RV", Label: "Revista", DefaultSlots: 1, Synonyms: []string{"RE", "PS"}},
	{Code: "TV", Label: "TV", DefaultSlots: 1, NeedsInsertionCount: true, Synonyms: []string{"TA", "PT", "PV"}},
	{Code: DefaultCode, Label: "Outros Serviços", DefaultSlots: 1, Synonyms: []string{
		"AS", "BR", "BV", "CA", "CR", "CS", "DE", "FE", "FI",
		"FO", "FP", "IL", "IP", "LO", "MD", "MI", "ML", "MO",
		"OU", "PB", "PQ", "RL", "RP", "RT", "TO", "TR", "VE",
	}},
}

// Resolve maps a raw media code to its canonical catalog entry. It is total:
// empty, unknown, or garbled input resolves to the DEFAULT entry.
func Resolve(code string) Entry {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if upper == "" {
		return mustLookup(DefaultCode)
	}

	if entry, ok := Lookup(upper); ok {
		return entry
	}

	for _, entry := range entries {
		for _, syn := range entry.Synonyms {
			if syn == upper {
				return entry
			}
		}
	}

	return mustLookup(DefaultCode)
}

// Lookup finds an entry by exact canonical code. The code must already be
// upper-cased and trimmed.
func Lookup(code string) (Entry, bool) {
	for _, entry := range entries {
		if entry.Code == code {
			return entry, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the reference table in its stable order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func mustLookup(code string) Entry {
	entry, ok := Lookup(code)
	if !ok {
		panic("catalog: missing reserved entry " + code)
	}
	return entry
}
