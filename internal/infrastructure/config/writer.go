package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// EncodeTOML renders cfg as TOML with fields in definition order.
func EncodeTOML(cfg *Config) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.String(), nil
}
