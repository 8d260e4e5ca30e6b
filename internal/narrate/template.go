package narrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rajveda/jyotish/internal/model"
)

// TemplateRenderer produces fixed deterministic sentences. It is always
// available and serves as the floor the generative renderer falls back to.
type TemplateRenderer struct{}

// NewTemplateRenderer creates the deterministic renderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

// Name returns the renderer name.
func (r *TemplateRenderer) Name() string {
	return "template"
}

// ChartSummary narrates lagna, moon sign, and detected yogas.
func (r *TemplateRenderer) ChartSummary(_ context.Context, name, lagna, moon string, yogas []string) string {
	yogaLine := "No major predefined yoga triggered in demo rules"
	if len(yogas) > 0 {
		yogaLine = strings.Join(yogas, ", ")
	}
	return fmt.Sprintf(
		"%s, your chart opens with %s Lagna and %s Moon. Detected yogic signatures: %s. "+
			"This is reflective spiritual guidance, not medical, psychological, or financial advice.",
		name, lagna, moon, yogaLine)
}

// DashaNow narrates the running periods.
func (r *TemplateRenderer) DashaNow(_ context.Context, maha, antar, pratyantar string) string {
	if maha == "" {
		maha = "Unknown"
	}
	if antar == "" {
		antar = "(antar not found)"
	}
	if pratyantar == "" {
		pratyantar = "(pratyantar not found)"
	}
	return fmt.Sprintf("Current cycle: %s Mahadasha, %s Antardasha, and %s Pratyantardasha influence.",
		maha, antar, pratyantar)
}

// Compatibility narrates an Ashta Kuta result.
func (r *TemplateRenderer) Compatibility(_ context.Context, result *model.CompatibilityResult) string {
	return fmt.Sprintf("Total Guna Milan score: %v/36. %s", result.TotalScore36, result.TextualSummary)
}

// Transit narrates transit highlights.
func (r *TemplateRenderer) Transit(_ context.Context, highlights []string) string {
	if len(highlights) == 0 {
		return "Gochar is steady today; focus on house activations and your running dasha context."
	}
	return strings.Join(highlights, " | ")
}
