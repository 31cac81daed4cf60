package config

// Default configuration constants
const (
	// Typeahead defaults
	defaultEmptyLabel = "No matches found."
	defaultMaxHeight  = 300 // rows, clamped to the terminal
	defaultLabelKey   = "label"

	defaultDockerHost = "localhost"

	dirPerm  = 0o755
	filePerm = 0o644
)

func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for kitematic.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is set by ensureDatabasePath
			Path: "",
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "text",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
		},
		Appearance: AppearanceConfig{
			LightPalette: ColorPalette{
				Background:     "#fafafa",
				Surface:        "#f4f4f5",
				SurfaceVariant: "#e4e4e7",
				Text:           "#18181b",
				Muted:          "#71717a",
				Accent:         "#0ea5e9", // Sky-500
				Border:         "#d4d4d8",
			},
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#18181b",
				SurfaceVariant: "#27272a",
				Text:           "#fafafa",
				Muted:          "#a1a1aa",
				Accent:         "#38bdf8", // Sky-400
				Border:         "#3f3f46",
			},
			ColorScheme: ColorSchemeAuto,
		},
		Typeahead: TypeaheadConfig{
			EmptyLabel:  defaultEmptyLabel,
			MaxHeight:   defaultMaxHeight,
			LabelKey:    defaultLabelKey,
			Placeholder: "",
			Width:       0,
		},
		Docker: DockerConfig{
			Host: defaultDockerHost,
		},
	}
}
