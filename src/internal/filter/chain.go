// FILE: logviewer/src/internal/filter/chain.go
package filter

import (
	"fmt"
	"sync/atomic"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
)

// Chain manages a sequence of filters, applying them in order.
type Chain struct {
	filters []*Filter
	logger  *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	totalPassed    atomic.Uint64
}

// NewChain creates a new filter chain from a slice of filter configurations.
func NewChain(configs []config.FilterConfig, logger *log.Logger) (*Chain, error) {
	chain := &Chain{
		filters: make([]*Filter, 0, len(configs)),
		logger:  logger,
	}

	for i, cfg := range configs {
		filter, err := NewFilter(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("filter[%d]: %w", i, err)
		}
		chain.filters = append(chain.filters, filter)
	}

	logger.Info("msg", "Filter chain created",
		"component", "filter_chain",
		"filter_count", len(configs))
	return chain, nil
}

// NewViewerChain builds the chain for a viewer: the exclusion pattern,
// when set, runs first, followed by the configured filters.
func NewViewerChain(cfg *config.ViewerConfig, logger *log.Logger) (*Chain, error) {
	configs := make([]config.FilterConfig, 0, len(cfg.Filters)+1)
	if cfg.ExcludePattern != "" {
		configs = append(configs, config.FilterConfig{
			Type:     config.FilterTypeExclude,
			Logic:    config.FilterLogicOr,
			Patterns: []string{cfg.ExcludePattern},
		})
	}
	configs = append(configs, cfg.Filters...)
	return NewChain(configs, logger)
}

// Apply runs a line through all filters in the chain.
func (c *Chain) Apply(line string) bool {
	c.totalProcessed.Add(1)

	if len(c.filters) == 0 {
		c.totalPassed.Add(1)
		return true
	}

	// All filters must pass
	for _, filter := range c.filters {
		if !filter.Apply(line) {
			return false
		}
	}

	c.totalPassed.Add(1)
	return true
}

// Len returns the number of filters in the chain
func (c *Chain) Len() int {
	return len(c.filters)
}

// GetStats returns aggregated statistics for the entire chain.
func (c *Chain) GetStats() map[string]any {
	filterStats := make([]map[string]any, len(c.filters))
	for i, filter := range c.filters {
		filterStats[i] = filter.GetStats()
	}

	return map[string]any{
		"filter_count":    len(c.filters),
		"total_processed": c.totalProcessed.Load(),
		"total_passed":    c.totalPassed.Load(),
		"filters":         filterStats,
	}
}
