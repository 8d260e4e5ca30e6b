package narrate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rajveda/jyotish/internal/model"
)

// New selects a renderer from configuration. The generative variant is
// probed once here; if construction or the availability check fails the
// process stays on templates permanently. New never returns nil - the
// template renderer is always the floor.
func New(cfg model.LLMConfig, verbose bool) Renderer {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		r, err := NewOpenAIRenderer(cfg)
		if err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "OpenAI renderer unavailable; template-only mode: %v\n", err)
			}
			return NewTemplateRenderer()
		}
		probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if !r.IsAvailable(probeCtx) {
			if verbose {
				fmt.Fprintln(os.Stderr, "OpenAI probe failed; template-only mode")
			}
			return NewTemplateRenderer()
		}
		return r

	case "":
		return NewTemplateRenderer()

	default:
		if verbose {
			fmt.Fprintf(os.Stderr, "unknown LLM provider %q; template-only mode\n", cfg.Provider)
		}
		return NewTemplateRenderer()
	}
}
