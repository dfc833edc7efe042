package model

import "strings"

// FormatCNPJ extracts the digits from a vehicle document string and applies
// the standard CNPJ mask (XX.XXX.XXX/XXXX-XX). Inputs without exactly 14
// digits are returned trimmed but otherwise untouched.
func FormatCNPJ(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 14 {
		return strings.TrimSpace(raw)
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}
