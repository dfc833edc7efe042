package catalog

import "testing"

func TestResolve_CanonicalCodes(t *testing.T) {
	for _, entry := range Entries() {
		got := Resolve(entry.Code)
		if got.Code != entry.Code {
			t.Errorf("Resolve(%q) = %q, want %q", entry.Code, got.Code, entry.Code)
		}
	}
}

func TestResolve_Synonyms(t *testing.T) {
	cases := map[string]string{
		"PO": "OD", // legacy outdoor code
		"PH": "DO",
		"PF": "FL",
		"GD": "FL",
		"PI": "MN",
		"PM": "MT",
		"EP": "ME",
		"PV": "TV",
		"PW": "IN",
		"BR": "DEFAULT",
	}
	for raw, want := range cases {
		if got := Resolve(raw); got.Code != want {
			t.Errorf("Resolve(%q) = %q, want %q", raw, got.Code, want)
		}
	}
}

func TestResolve_NormalizesInput(t *testing.T) {
	for _, raw := range []string{"po", " po ", "Po", "\tPO\n"} {
		if got := Resolve(raw); got.Code != "OD" {
			t.Errorf("Resolve(%q) = %q, want OD", raw, got.Code)
		}
	}
}

func TestResolve_Totality(t *testing.T) {
	// Anything not in the table resolves to DEFAULT, never fails.
	for _, raw := range []string{"", "   ", "XX", "ZZZ", "12", "não-é-código", "OD OD", "\x00"} {
		got := Resolve(raw)
		if got.Code == "" {
			t.Fatalf("Resolve(%q) returned zero entry", raw)
		}
		if _, ok := Lookup(got.Code); !ok {
			t.Errorf("Resolve(%q) = %q, not a canonical code", raw, got.Code)
		}
	}
	if got := Resolve("ZZZ"); got.Code != DefaultCode {
		t.Errorf("Resolve(ZZZ) = %q, want %q", got.Code, DefaultCode)
	}
}

func TestSynonymsDisjoint(t *testing.T) {
	seen := make(map[string]string)
	for _, entry := range Entries() {
		if prev, dup := seen[entry.Code]; dup {
			t.Errorf("canonical code %q appears in %q and %q", entry.Code, prev, entry.Code)
		}
		seen[entry.Code] = entry.Code
		for _, syn := range entry.Synonyms {
			if prev, dup := seen[syn]; dup {
				t.Errorf("synonym %q of %q already claimed by %q", syn, entry.Code, prev)
			}
			seen[syn] = entry.Code
		}
	}
}

func TestCapabilityFlags(t *testing.T) {
	wantInsertions := map[string]bool{"DO": true, "TV": true}
	wantMarking := map[string]bool{"MT": true, "ME": true}
	wantPerLocation := map[string]bool{"OD": true, "FL": true}

	for _, entry := range Entries() {
		if entry.NeedsInsertionCount != wantInsertions[entry.Code] {
			t.Errorf("%s: NeedsInsertionCount = %v", entry.Code, entry.NeedsInsertionCount)
		}
		if entry.NeedsVehicleMarking != wantMarking[entry.Code] {
			t.Errorf("%s: NeedsVehicleMarking = %v", entry.Code, entry.NeedsVehicleMarking)
		}
		if entry.PerLocationEvidence != wantPerLocation[entry.Code] {
			t.Errorf("%s: PerLocationEvidence = %v", entry.Code, entry.PerLocationEvidence)
		}
	}
}

func TestDefaultSlots(t *testing.T) {
	cases := map[string]int{"DO": 3, "MT": 2, "ME": 2, "OD": 1, "TV": 1, DefaultCode: 1}
	for code, want := range cases {
		entry, ok := Lookup(code)
		if !ok {
			t.Fatalf("Lookup(%q) missing", code)
		}
		if entry.DefaultSlots != want {
			t.Errorf("%s: DefaultSlots = %d, want %d", code, entry.DefaultSlots, want)
		}
	}
}
