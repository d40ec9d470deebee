// Package config loads lrutrace settings from TOML files and environment variables.
package config

// Config represents the complete configuration for lrutrace.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation" toml:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output" toml:"output"`
	Stepper    StepperConfig    `mapstructure:"stepper" yaml:"stepper" toml:"stepper"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// SimulationConfig holds engine defaults used when a scenario does not set them.
type SimulationConfig struct {
	// DefaultCapacity is the slot count for --ops runs without --capacity (must be >= 1)
	DefaultCapacity int `mapstructure:"default_capacity" yaml:"default_capacity" toml:"default_capacity"`
	// Policy is the eviction policy name (only "lru" is supported)
	Policy string `mapstructure:"policy" yaml:"policy" toml:"policy"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// OutputFormat selects the trace exporter.
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatArrow OutputFormat = "arrow"
)

// OutputConfig controls how `run` prints traces.
type OutputConfig struct {
	Format      OutputFormat `mapstructure:"format" yaml:"format" toml:"format"`
	ShowSummary bool         `mapstructure:"show_summary" yaml:"show_summary" toml:"show_summary"`
	ShowMetrics bool         `mapstructure:"show_metrics" yaml:"show_metrics" toml:"show_metrics"`
}

// StepperConfig controls the interactive `step` browser.
type StepperConfig struct {
	// HighlightMilliseconds is how long a newly added key stays highlighted
	HighlightMilliseconds int  `mapstructure:"highlight_ms" yaml:"highlight_ms" toml:"highlight_ms"`
	AltScreen             bool `mapstructure:"alt_screen" yaml:"alt_screen" toml:"alt_screen"`
}

// AppearanceConfig holds terminal colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette"`
}

// ColorPalette holds hex colors used by the CLI theme.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
	Evicted        string `mapstructure:"evicted" yaml:"evicted" toml:"evicted" json:"evicted"`
}
