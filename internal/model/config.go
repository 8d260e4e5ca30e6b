package model

import "time"

// Config is the full application configuration.
type Config struct {
	Store     StoreConfig     `json:"store" yaml:"store"`
	Ephemeris EphemerisConfig `json:"ephemeris" yaml:"ephemeris"`
	Yoga      YogaConfig      `json:"yoga" yaml:"yoga"`
	Remedy    RemedyConfig    `json:"remedy" yaml:"remedy"`
	LLM       LLMConfig       `json:"llm" yaml:"llm"`
	Output    OutputConfig    `json:"output" yaml:"output"`
}

// YogaConfig configures table-driven yoga detection.
type YogaConfig struct {
	// RulesPath of the YAML rule file; missing file means no rules
	RulesPath string `json:"rules_path" yaml:"rules_path"`
}

// RemedyConfig configures the advisory remedy lookup tables.
type RemedyConfig struct {
	// AdvisoriesPath of the planet remedies CSV; missing file means none
	AdvisoriesPath string `json:"advisories_path" yaml:"advisories_path"`

	// GemstonesPath of the gemstone suggestions CSV
	GemstonesPath string `json:"gemstones_path" yaml:"gemstones_path"`
}

// StoreConfig configures profile persistence.
type StoreConfig struct {
	// Path of the JSON profile document file
	Path string `json:"path" yaml:"path"`

	// CacheTTL for the in-memory read-through cache
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// EphemerisConfig configures the planetary position source.
type EphemerisConfig struct {
	// CSVPath of precomputed tropical longitudes; when the file is
	// missing the deterministic mean-motion source is used instead
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// CacheTTL for memoized per-instant position lookups
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// LLMConfig configures the optional generative narration layer.
type LLMConfig struct {
	// Provider name: "openai" or "" (templates only)
	Provider string `json:"provider" yaml:"provider"`

	// Model name (provider-specific)
	Model string `json:"model" yaml:"model"`

	// APIKey for the provider
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Timeout for generation requests, in seconds
	Timeout int `json:"timeout" yaml:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// RequestsPerMinute caps generative calls; templates are never limited
	RequestsPerMinute float64 `json:"requests_per_minute" yaml:"requests_per_minute"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:     "profiles.json",
			CacheTTL: 5 * time.Minute,
		},
		Ephemeris: EphemerisConfig{
			CSVPath:  "data/ephemeris.csv",
			CacheTTL: 15 * time.Minute,
		},
		Yoga: YogaConfig{
			RulesPath: "data/yogas.yaml",
		},
		Remedy: RemedyConfig{
			AdvisoriesPath: "data/remedies.csv",
			GemstonesPath:  "data/gemstones.csv",
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Model:             "",
			Timeout:           30,
			MaxTokens:         400,
			RequestsPerMinute: 20,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
