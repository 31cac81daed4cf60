package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bessdsv/kitematic/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, falling back to the working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	configFile := filepath.Join(configDir, "config.toml")

	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return newManager(v, configFile)
}

// NewManagerForFile creates a manager bound to an explicit config file.
// The file is created with defaults when missing.
func NewManagerForFile(configFile string) (*Manager, error) {
	if configFile == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}
	v := newViper()
	v.SetConfigFile(configFile)
	return newManager(v, configFile)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")

	// KITEMATIC_DATABASE_PATH, KITEMATIC_TYPEAHEAD_MAX_HEIGHT, ...
	v.SetEnvPrefix("KITEMATIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func newManager(v *viper.Viper, configFile string) (*Manager, error) {
	// Short names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "KITEMATIC_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind KITEMATIC_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KITEMATIC_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KITEMATIC_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("docker.host", "KITEMATIC_DOCKER_HOST", "DOCKER_HOST_IP"); err != nil {
		return nil, fmt.Errorf("failed to bind KITEMATIC_DOCKER_HOST: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
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
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme)) {
	case ColorSchemeDark:
		config.Appearance.ColorScheme = ColorSchemeDark
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	default:
		config.Appearance.ColorScheme = ColorSchemeAuto
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Typeahead.LabelKey = strings.TrimSpace(config.Typeahead.LabelKey)
	if config.Typeahead.LabelKey == "" {
		config.Typeahead.LabelKey = defaultLabelKey
	}
	if config.Typeahead.EmptyLabel == "" {
		config.Typeahead.EmptyLabel = defaultEmptyLabel
	}

	config.Docker.Host = strings.TrimSpace(config.Docker.Host)
	if config.Docker.Host == "" {
		config.Docker.Host = defaultDockerHost
	}
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

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile
}

// createDefaultConfig writes the defaults and a sibling JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(m.configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	m.viper.SetConfigFile(m.configFile)

	log := logging.NewFromEnv()
	log.Info().Str("path", m.configFile).Msg("created default configuration file")

	if err := WriteSchemaFile(filepath.Dir(m.configFile)); err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
	}
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)

	m.setAppearanceDefaults(defaults)
	m.setTypeaheadDefaults(defaults)

	m.viper.SetDefault("docker.host", defaults.Docker.Host)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	m.viper.SetDefault("appearance.light_palette", defaults.Appearance.LightPalette)
	m.viper.SetDefault("appearance.dark_palette", defaults.Appearance.DarkPalette)
}

func (m *Manager) setTypeaheadDefaults(defaults *Config) {
	m.viper.SetDefault("typeahead.empty_label", defaults.Typeahead.EmptyLabel)
	m.viper.SetDefault("typeahead.max_height", defaults.Typeahead.MaxHeight)
	m.viper.SetDefault("typeahead.label_key", defaults.Typeahead.LabelKey)
	m.viper.SetDefault("typeahead.placeholder", defaults.Typeahead.Placeholder)
	m.viper.SetDefault("typeahead.width", defaults.Typeahead.Width)
}
