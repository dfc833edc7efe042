package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/grupoom/checking-central/internal/model"
)

// Renderer writes manifests as JSON artifacts, Markdown review documents, and
// one-screen stdout summaries.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the manifest as indented JSON.
func (r *Renderer) RenderJSON(m model.RequirementManifest, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-reviewable Markdown rendition.
func (r *Renderer) RenderMarkdown(m model.RequirementManifest, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Checking — PI %s\n\n", orDash(m.Order))
	fmt.Fprintf(&b, "- **Meio**: %s (%s)\n", m.MediaLabel, m.MediaCode)
	fmt.Fprintf(&b, "- **Envio**: %s\n", allowedWord(m.Gate.Allowed))
	fmt.Fprintf(&b, "- **Situação**: %s\n", m.Gate.Message)
	if m.Gate.IsComplement {
		b.WriteString("- **Complemento**: sim\n")
	}
	if m.NeedsInsertionCount {
		b.WriteString("- Requer total de inserções\n")
	}
	if m.NeedsVehicleMarking {
		b.WriteString("- Requer marcação do veículo\n")
	}
	b.WriteString("\n")

	if len(m.Locations) > 0 {
		fmt.Fprintf(&b, "## Endereços (%d)\n\n", len(m.Locations))
		for _, loc := range m.Locations {
			fmt.Fprintf(&b, "%s. %s\n", strings.TrimPrefix(loc.ID, "loc_"), loc.Address)
		}
		b.WriteString("\n")
	}

	if len(m.Slots) > 0 {
		b.WriteString("## Comprovantes exigidos\n\n")
		b.WriteString("| Campo | Descrição | Endereço |\n")
		b.WriteString("|---|---|---|\n")
		for _, slot := range m.Slots {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", slot.Key, slot.Label, orDash(slot.Address))
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGerado por checking-central.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short stdout summary of the manifest.
func (r *Renderer) RenderSummary(m model.RequirementManifest) {
	fmt.Printf("PI:     %s\n", orDash(m.Order))
	fmt.Printf("Meio:   %s (%s)\n", m.MediaLabel, m.MediaCode)
	fmt.Printf("Status: %s\n", m.Gate.Message)
	if !m.Gate.Allowed {
		return
	}
	if len(m.Locations) > 0 {
		fmt.Printf("Endereços: %d (1 foto de perto + 1 de longe por endereço)\n", len(m.Locations))
	}
	fmt.Printf("Comprovantes: %d\n", len(m.Slots))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func allowedWord(allowed bool) string {
	if allowed {
		return "liberado"
	}
	return "bloqueado"
}
