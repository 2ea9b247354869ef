// FILE: logviewer/src/internal/parser/registry.go
package parser

import (
	"fmt"
	"path"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
)

type fileFormat struct {
	globs      []string
	classifier LineClassifier
}

// Registry selects a LineClassifier per log file name
type Registry struct {
	formats  []fileFormat
	fallback LineClassifier
	logger   *log.Logger
}

// NewRegistry compiles the configured formats. defaultFormat names the
// format used for files no glob matches; empty selects the built-in one.
func NewRegistry(formats []config.FormatConfig, defaultFormat string, logger *log.Logger) (*Registry, error) {
	r := &Registry{
		formats:  make([]fileFormat, 0, len(formats)),
		fallback: DefaultClassifier{},
		logger:   logger,
	}

	for i, f := range formats {
		pc, err := NewPatternClassifier(f.Name, f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("format[%d]: %w", i, err)
		}
		r.formats = append(r.formats, fileFormat{globs: f.Files, classifier: pc})
		if f.Name == defaultFormat {
			r.fallback = pc
		}
	}

	if defaultFormat != "" && r.fallback.Name() != defaultFormat {
		return nil, fmt.Errorf("default format '%s' is not defined", defaultFormat)
	}

	logger.Debug("msg", "Format registry created",
		"component", "format_registry",
		"format_count", len(r.formats),
		"default", r.fallback.Name())

	return r, nil
}

// ClassifierFor returns the classifier of the first format whose glob
// matches the file name
func (r *Registry) ClassifierFor(fileName string) LineClassifier {
	for _, f := range r.formats {
		for _, glob := range f.globs {
			if ok, _ := path.Match(glob, fileName); ok {
				return f.classifier
			}
		}
	}
	return r.fallback
}
