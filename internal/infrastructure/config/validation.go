package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	validationErrors = append(validationErrors, validateTypeahead(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "text", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be text, console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validatePalette(section string, p ColorPalette) []string {
	var validationErrors []string
	fields := []struct {
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
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if !hexColor.MatchString(f.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.%s must be a hex color like #rrggbb (got %q)", section, f.name, f.value))
		}
	}
	return validationErrors
}

func validateTypeahead(config *Config) []string {
	var validationErrors []string
	if config.Typeahead.MaxHeight < 1 {
		validationErrors = append(validationErrors, "typeahead.max_height must be at least 1")
	}
	if config.Typeahead.Width < 0 {
		validationErrors = append(validationErrors, "typeahead.width must be non-negative")
	}
	return validationErrors
}
