package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSimulation(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateOutput(config)...)
	validationErrors = append(validationErrors, validateStepper(config)...)
	validationErrors = append(validationErrors, validatePalette(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateSimulation(config *Config) []string {
	var validationErrors []string
	if config.Simulation.DefaultCapacity < 1 {
		validationErrors = append(validationErrors, "simulation.default_capacity must be at least 1")
	}
	if config.Simulation.Policy != "lru" {
		validationErrors = append(validationErrors, fmt.Sprintf("simulation.policy must be 'lru' (got: %s)", config.Simulation.Policy))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}
	return validationErrors
}

func validateOutput(config *Config) []string {
	switch config.Output.Format {
	case OutputFormatText, OutputFormatJSON, OutputFormatArrow:
		return nil
	default:
		return []string{fmt.Sprintf("output.format must be one of: text, json, arrow (got: %s)", config.Output.Format)}
	}
}

func validateStepper(config *Config) []string {
	if config.Stepper.HighlightMilliseconds < 0 {
		return []string{"stepper.highlight_ms must be non-negative"}
	}
	return nil
}

func validatePalette(config *Config) []string {
	var validationErrors []string
	p := config.Appearance.Palette
	colors := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
		{"evicted", p.Evicted},
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("appearance.palette.%s must be a hex color like #4ade80 (got: %q)", c.name, c.value))
		}
	}
	return validationErrors
}
