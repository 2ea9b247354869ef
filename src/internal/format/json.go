// FILE: logviewer/src/internal/format/json.go
package format

import (
	"encoding/json"
	"fmt"

	"logviewer/src/internal/config"
	"logviewer/src/internal/core"

	"github.com/lixenwraith/log"
)

// JSONFormatter writes one JSON object per entry.
type JSONFormatter struct {
	pretty bool
	logger *log.Logger
}

// NewJSONFormatter creates a new JSON formatter from output options.
func NewJSONFormatter(cfg *config.OutputConfig, logger *log.Logger) (*JSONFormatter, error) {
	f := &JSONFormatter{logger: logger}
	if cfg != nil {
		f.pretty = cfg.Pretty
	}
	return f, nil
}

// Format marshals a single entry.
func (f *JSONFormatter) Format(entry core.FormattedEntry) ([]byte, error) {
	result, err := f.marshal(entry)
	if err != nil {
		return nil, err
	}
	return append(result, '\n'), nil
}

// Name returns the formatter's type name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// FormatBatch marshals entries as a single JSON array.
func (f *JSONFormatter) FormatBatch(entries []core.FormattedEntry) ([]byte, error) {
	if entries == nil {
		entries = []core.FormattedEntry{}
	}
	result, err := f.marshal(entries)
	if err != nil {
		return nil, err
	}
	return append(result, '\n'), nil
}

func (f *JSONFormatter) marshal(v any) ([]byte, error) {
	var result []byte
	var err error
	if f.pretty {
		result, err = json.MarshalIndent(v, "", "  ")
	} else {
		result, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return result, nil
}
