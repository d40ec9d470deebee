package config

import "github.com/bnema/lrutrace/internal/domain/entity"

// Default configuration constants
const (
	defaultHighlightMs = 1000 // the demo clears its highlight after one second
)

// DefaultConfig returns the default configuration values for lrutrace.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			DefaultCapacity: entity.DemoCapacity,
			Policy:          "lru",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format:      OutputFormatText,
			ShowSummary: true,
			ShowMetrics: false,
		},
		Stepper: StepperConfig{
			HighlightMilliseconds: defaultHighlightMs,
			AltScreen:             true,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultDarkPalette(),
		},
	}
}

// DefaultDarkPalette returns the built-in dark colors.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Evicted:        "#ef4444",
	}
}
