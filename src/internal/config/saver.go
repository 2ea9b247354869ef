// FILE: logviewer/src/internal/config/saver.go
package config

import (
	"fmt"
	"strings"

	lconfig "github.com/lixenwraith/config"
	"github.com/pelletier/go-toml/v2"
)

// SaveToFile writes the configuration to path as TOML
func (c *Config) SaveToFile(path string) error {
	if path == "" {
		return fmt.Errorf("cannot save config: path is empty")
	}

	lcfg, err := lconfig.NewBuilder().
		WithFile(path).
		WithTarget(c).
		WithFileFormat("toml").
		Build()
	if err != nil && !strings.Contains(err.Error(), "not found") {
		return fmt.Errorf("failed to create config builder: %w", err)
	}

	if err := lcfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// EncodeTOML renders the configuration in config file layout
func (c *Config) EncodeTOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
