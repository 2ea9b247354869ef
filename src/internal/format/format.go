// FILE: logviewer/src/internal/format/format.go
package format

import (
	"fmt"

	"logviewer/src/internal/config"
	"logviewer/src/internal/core"

	"github.com/lixenwraith/log"
)

// Formatter renders a formatted entry for terminal or file output.
type Formatter interface {
	// Format returns the rendered entry, newline terminated
	Format(entry core.FormattedEntry) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a Formatter from output configuration.
func New(cfg *config.OutputConfig, logger *log.Logger) (Formatter, error) {
	name := ""
	if cfg != nil {
		name = cfg.Format
	}
	if name == "" {
		name = "text"
	}

	switch name {
	case "json":
		return NewJSONFormatter(cfg, logger)
	case "text", "txt":
		return NewTextFormatter(cfg, logger)
	case "raw":
		return NewRawFormatter(logger)
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
