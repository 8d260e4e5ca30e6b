package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/rajveda/jyotish/internal/chart"
	"github.com/rajveda/jyotish/internal/dasha"
	"github.com/rajveda/jyotish/internal/ephemeris"
	"github.com/rajveda/jyotish/internal/kuta"
	"github.com/rajveda/jyotish/internal/model"
	"github.com/rajveda/jyotish/internal/narrate"
	"github.com/rajveda/jyotish/internal/store"
	"github.com/rajveda/jyotish/internal/vedic"
)

// app bundles the wired collaborators every command works with.
type app struct {
	cfg      *model.Config
	store    store.Store
	source   ephemeris.Source
	builder  *chart.Builder
	engine   *dasha.Engine
	scorer   *kuta.Scorer
	renderer narrate.Renderer
}

// loadConfig resolves the effective configuration: defaults overlaid
// with any values from the config file and JYOTISH_* environment.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("store.path"); v != "" {
		cfg.Store.Path = v
	}
	if v := viper.GetDuration("store.cache_ttl"); v > 0 {
		cfg.Store.CacheTTL = v
	}
	if v := viper.GetString("ephemeris.csv_path"); v != "" {
		cfg.Ephemeris.CSVPath = v
	}
	if v := viper.GetDuration("ephemeris.cache_ttl"); v > 0 {
		cfg.Ephemeris.CacheTTL = v
	}
	if v := viper.GetString("yoga.rules_path"); v != "" {
		cfg.Yoga.RulesPath = v
	}
	if v := viper.GetString("remedy.advisories_path"); v != "" {
		cfg.Remedy.AdvisoriesPath = v
	}
	if v := viper.GetString("remedy.gemstones_path"); v != "" {
		cfg.Remedy.GemstonesPath = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetInt("llm.timeout"); v > 0 {
		cfg.LLM.Timeout = v
	}
	if v := viper.GetInt("llm.max_tokens"); v > 0 {
		cfg.LLM.MaxTokens = v
	}
	if v := viper.GetFloat64("llm.requests_per_minute"); v > 0 {
		cfg.LLM.RequestsPerMinute = v
	}
	cfg.Output.Verbose = verbose

	// API keys come from the environment, never from the config file.
	if cfg.LLM.Provider == "openai" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg
}

// newApp wires the store, ephemeris source, computation engines, and
// renderer from configuration.
func newApp() (*app, error) {
	cfg := loadConfig()

	fileStore, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}

	source := ephemeris.New(cfg.Ephemeris.CSVPath, cfg.Ephemeris.CacheTTL)
	if verbose {
		fmt.Fprintf(os.Stderr, "Ephemeris source: %s\n", source.Name())
	}

	renderer := narrate.New(cfg.LLM, verbose)
	if verbose {
		fmt.Fprintf(os.Stderr, "Narration renderer: %s\n", renderer.Name())
	}

	return &app{
		cfg:      cfg,
		store:    store.NewCachedStore(fileStore, cfg.Store.CacheTTL),
		source:   source,
		builder:  chart.NewBuilder(source),
		engine:   dasha.NewEngine(),
		scorer:   kuta.NewScorer(),
		renderer: renderer,
	}, nil
}

// profileWithChart loads a profile and computes its chart on first use,
// persisting the result.
func (a *app) profileWithChart(name string) (*model.Profile, error) {
	profile, err := a.store.GetByName(name)
	if err != nil {
		return nil, err
	}
	if profile.Chart == nil {
		built, err := a.builder.Build(profile.Name, profile.BirthDetails)
		if err != nil {
			return nil, fmt.Errorf("build chart for %s: %w", profile.Name, err)
		}
		profile.Chart = built
		if err := a.store.Upsert(profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// dashaTimeline regenerates the profile's Vimshottari timeline from its
// Moon nakshatra.
func (a *app) dashaTimeline(profile *model.Profile) ([]model.DashaPeriod, error) {
	moon, ok := profile.Chart.Moon()
	if !ok {
		return nil, fmt.Errorf("%w: chart %s", kuta.ErrMissingMoon, profile.Chart.ID)
	}
	nakIdx := vedic.NakshatraIndex(moon.NakshatraName)
	startLord := dasha.StartLordForNakshatra(nakIdx)

	birthUTC, err := vedic.ToUTC(
		profile.BirthDetails.DateOfBirth,
		profile.BirthDetails.TimeOfBirth,
		profile.BirthDetails.Timezone,
	)
	if err != nil {
		return nil, fmt.Errorf("birth instant: %w", err)
	}
	return a.engine.Generate(startLord, birthUTC, dasha.DefaultSpanYears)
}
