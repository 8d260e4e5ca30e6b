package narrate

import (
	"context"

	"github.com/rajveda/jyotish/internal/model"
)

// Renderer turns computed astrology results into human-readable
// sentences. Implementations never influence the numbers they narrate.
type Renderer interface {
	// Name returns the renderer name.
	Name() string

	// ChartSummary narrates lagna, moon sign, and detected yogas.
	ChartSummary(ctx context.Context, name, lagna, moon string, yogas []string) string

	// DashaNow narrates the running periods. Empty lord names render as
	// not-found placeholders.
	DashaNow(ctx context.Context, maha, antar, pratyantar string) string

	// Compatibility narrates an Ashta Kuta result.
	Compatibility(ctx context.Context, result *model.CompatibilityResult) string

	// Transit narrates transit highlights.
	Transit(ctx context.Context, highlights []string) string
}
