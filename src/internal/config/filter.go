// FILE: logviewer/src/internal/config/filter.go
package config

import (
	"fmt"
	"regexp"
)

// FilterType selects whether matching lines are kept or dropped
type FilterType string

const (
	FilterTypeInclude FilterType = "include"
	FilterTypeExclude FilterType = "exclude"
)

// FilterLogic selects how multiple patterns combine
type FilterLogic string

const (
	FilterLogicOr  FilterLogic = "or"
	FilterLogicAnd FilterLogic = "and"
)

// FilterConfig is a regex line filter applied before entries are grouped
type FilterConfig struct {
	Type     FilterType  `toml:"type"`
	Logic    FilterLogic `toml:"logic"`
	Patterns []string    `toml:"patterns"`
}

func validateFilter(index int, cfg *FilterConfig) error {
	switch cfg.Type {
	case FilterTypeInclude, FilterTypeExclude, "":
	default:
		return fmt.Errorf("filter[%d]: invalid type '%s' (must be 'include' or 'exclude')", index, cfg.Type)
	}

	switch cfg.Logic {
	case FilterLogicOr, FilterLogicAnd, "":
	default:
		return fmt.Errorf("filter[%d]: invalid logic '%s' (must be 'or' or 'and')", index, cfg.Logic)
	}

	// Empty patterns is valid - passes everything
	for i, pattern := range cfg.Patterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("filter[%d] pattern[%d] '%s': invalid regex: %w", index, i, pattern, err)
		}
	}

	return nil
}
