package config

// Config represents the complete configuration for kitematic.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	// Typeahead holds the defaults of every typeahead widget.
	Typeahead TypeaheadConfig `mapstructure:"typeahead" yaml:"typeahead" toml:"typeahead"`
	// Docker describes the daemon whose containers are edited.
	Docker DockerConfig `mapstructure:"docker" yaml:"docker" toml:"docker"`
}

// DatabaseConfig holds the container store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output configuration. Interactive commands always log to file
	// so the alternate screen stays clean.
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
}

// AppearanceConfig holds terminal styling preferences.
type AppearanceConfig struct {
	LightPalette ColorPalette `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette"`
	// ColorScheme selects the palette: "dark", "light", or "auto" (follows terminal background)
	ColorScheme string `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// TypeaheadConfig holds typeahead widget defaults.
type TypeaheadConfig struct {
	// EmptyLabel is shown as a disabled row when nothing matches
	EmptyLabel string `mapstructure:"empty_label" yaml:"empty_label" toml:"empty_label"`
	// MaxHeight caps the dropdown height in rows
	MaxHeight int `mapstructure:"max_height" yaml:"max_height" toml:"max_height"`
	// LabelKey names the option field displayed and matched (pick command)
	LabelKey    string `mapstructure:"label_key" yaml:"label_key" toml:"label_key"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder" toml:"placeholder"`
	// Width of the input in cells, 0 sizes to content
	Width int `mapstructure:"width" yaml:"width" toml:"width"`
}

// DockerConfig describes the docker host.
type DockerConfig struct {
	// Host is the address published ports are reached on (e.g. "localhost")
	Host string `mapstructure:"host" yaml:"host" toml:"host"`
}

// Color scheme values.
const (
	ColorSchemeAuto  = "auto"
	ColorSchemeDark  = "dark"
	ColorSchemeLight = "light"
)

// Palette returns the palette selected by ColorScheme. dark reports
// whether the terminal background is dark and is used for "auto".
func (a AppearanceConfig) Palette(dark bool) ColorPalette {
	switch a.ColorScheme {
	case ColorSchemeLight:
		return a.LightPalette
	case ColorSchemeDark:
		return a.DarkPalette
	}
	if dark {
		return a.DarkPalette
	}
	return a.LightPalette
}
