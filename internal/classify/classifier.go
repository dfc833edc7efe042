// Package classify extracts genuine street-address lines from the loosely
// structured location listings attached to outdoor media orders.
//
// The classifier is a heuristic allowlist-then-denylist filter, not a parser:
// it is tuned for few false positives (a missed address is cheaper than a
// bogus required-evidence slot) at the cost of some false negatives on
// atypically formatted listings.
package classify

import (
	"fmt"
	"strings"

	"github.com/grupoom/checking-central/internal/model"
	"golang.org/x/net/html"
)

const (
	minLineLen   = 5
	shortLineLen = 8
)

// wrapperFields are probed, in order, when the raw payload is a generic
// object wrapping the actual listing.
var wrapperFields = []string{"enderecos_raw", "enderecos", "endereco", "addresses", "campos"}

// addressFields are probed on structured listing entries.
var addressFields = []string{"endereco", "address"}

// Classifier scans raw location data and yields ordered location records.
// The zero value is not usable; construct with New.
type Classifier struct{}

// New creates a classifier over the built-in rule tables.
func New() *Classifier {
	return &Classifier{}
}

// Extract unifies the raw payload into candidate lines, classifies each, and
// returns the survivors as location records with stable sequential ids. It is
// total: absent or malformed payloads yield an empty slice, never an error.
func (c *Classifier) Extract(raw any) []model.LocationRecord {
	var records []model.LocationRecord
	for _, line := range c.candidateLines(raw, 0) {
		cleaned := stripPrefixes(strings.TrimSpace(line))
		heuristic, ok := c.classify(cleaned)
		if !ok {
			continue
		}

		id := fmt.Sprintf("loc_%03d", len(records)+1)
		records = append(records, model.LocationRecord{
			ID:        id,
			Address:   cleaned,
			Heuristic: heuristic,
			Slots:     locationSlots(id, cleaned),
		})
	}
	return records
}

// candidateLines unifies the collaborator's shapes: text blob, string array,
// structured-entry array, or a wrapper object probed for known field names.
// depth bounds wrapper recursion so cyclic maps cannot loop.
func (c *Classifier) candidateLines(raw any, depth int) []string {
	if raw == nil || depth > 3 {
		return nil
	}

	switch v := raw.(type) {
	case string:
		return splitBlob(v)
	case []string:
		return v
	case []any:
		var lines []string
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				lines = append(lines, entry)
			case map[string]any:
				for _, field := range addressFields {
					if val, ok := entry[field]; ok {
						if s, ok := val.(string); ok {
							lines = append(lines, s)
						} else if val != nil {
							lines = append(lines, fmt.Sprint(val))
						}
						break
					}
				}
			}
		}
		return lines
	case map[string]any:
		// The first known field present wins, even if it yields nothing;
		// later fields are never consulted as a fallback.
		for _, field := range wrapperFields {
			if inner, ok := v[field]; ok && inner != nil {
				return c.candidateLines(inner, depth+1)
			}
		}
		return nil
	default:
		return nil
	}
}

// classify runs the reject cascade and then the accept rules on a cleaned
// line. It returns the name of the accept rule that matched.
func (c *Classifier) classify(line string) (string, bool) {
	if len([]rune(line)) < minLineLen {
		return "", false
	}

	upper := strings.ToUpper(line)
	collapsed := strings.TrimSpace(punctRun.ReplaceAllString(upper, " "))

	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(collapsed, prefix) {
			return "", false
		}
	}
	if _, header := sectionHeaders[collapsed]; header {
		return "", false
	}
	for _, r := range noiseRules {
		if r.re.MatchString(line) {
			return "", false
		}
	}
	if len([]rune(line)) < shortLineLen && !shortLineAbbrev.MatchString(line) {
		return "", false
	}

	for _, r := range acceptRules {
		if r.re.MatchString(line) {
			return r.name, true
		}
	}
	return "", false
}

// stripPrefixes removes list markers and generic labels from a candidate line.
func stripPrefixes(line string) string {
	for _, re := range prefixStrips {
		line = re.ReplaceAllString(line, "")
	}
	return strings.TrimSpace(line)
}

// splitBlob breaks a text blob into lines, flattening any embedded markup
// first so tags never leak into addresses.
func splitBlob(blob string) []string {
	if blob == "" {
		return nil
	}
	clean := flattenMarkup(blob)
	clean = strings.ReplaceAll(clean, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, "\r", "\n")
	return strings.Split(clean, "\n")
}

// flattenMarkup strips HTML-ish markup from a blob, keeping visible text and
// turning break-like elements into line boundaries. Plain text passes
// through untouched.
func flattenMarkup(blob string) string {
	if !strings.Contains(blob, "<") {
		return blob
	}

	doc, err := html.Parse(strings.NewReader(blob))
	if err != nil {
		return blob
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "br", "p", "div", "li", "tr":
				buf.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "tr":
				buf.WriteString("\n")
			}
		}
	}
	walk(doc)
	return buf.String()
}

// locationSlots builds the fixed close-up/wide-angle evidence pair for one
// location.
func locationSlots(id, address string) []model.EvidenceSlot {
	return []model.EvidenceSlot{
		{
			Key:        "foto_perto_" + id,
			Label:      "Foto de Perto",
			Required:   true,
			LocationID: id,
			Address:    address,
		},
		{
			Key:        "foto_longe_" + id,
			Label:      "Foto de Longe",
			Required:   true,
			LocationID: id,
			Address:    address,
		},
	}
}
