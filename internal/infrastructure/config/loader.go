package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading.
type Manager struct {
	config   *Config
	viper    *viper.Viper
	fileRead bool
	mu       sync.RWMutex
}

// NewManager creates a new configuration manager. When configFile is empty
// the XDG config directory and the working directory are searched for
// config.toml; a missing file is not an error.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// Set up environment variable support
	v.SetEnvPrefix("LRUTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases for the logging keys
	if err := v.BindEnv("logging.level", "LRUTRACE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LRUTRACE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LRUTRACE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LRUTRACE_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	m.fileRead = false
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) || errors.Is(err, fs.ErrNotExist) {
			// Defaults and environment are enough
			return nil
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.viper.ConfigFileUsed(), err)
	}
	m.fileRead = true
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Simulation.Policy = strings.ToLower(strings.TrimSpace(config.Simulation.Policy))
	if config.Simulation.Policy == "" {
		config.Simulation.Policy = "lru"
	}

	switch strings.ToLower(string(config.Output.Format)) {
	case "", string(OutputFormatText):
		config.Output.Format = OutputFormatText
	case string(OutputFormatJSON):
		config.Output.Format = OutputFormatJSON
	case string(OutputFormatArrow):
		config.Output.Format = OutputFormatArrow
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// ConfigFileUsed returns the path of the file that was read, empty when
// only defaults and environment were used.
func (m *Manager) ConfigFileUsed() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.fileRead {
		return ""
	}
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("simulation.default_capacity", defaults.Simulation.DefaultCapacity)
	m.viper.SetDefault("simulation.policy", defaults.Simulation.Policy)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("output.format", string(defaults.Output.Format))
	m.viper.SetDefault("output.show_summary", defaults.Output.ShowSummary)
	m.viper.SetDefault("output.show_metrics", defaults.Output.ShowMetrics)

	m.viper.SetDefault("stepper.highlight_ms", defaults.Stepper.HighlightMilliseconds)
	m.viper.SetDefault("stepper.alt_screen", defaults.Stepper.AltScreen)

	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
	m.viper.SetDefault("appearance.palette.evicted", p.Evicted)
}

// Load reads configuration from configFile (or the default locations) and returns it.
func Load(configFile string) (*Config, string, error) {
	mgr, err := NewManager(configFile)
	if err != nil {
		return nil, "", err
	}
	if err := mgr.Load(); err != nil {
		return nil, "", err
	}
	return mgr.Get(), mgr.ConfigFileUsed(), nil
}
