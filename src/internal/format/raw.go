// FILE: logviewer/src/internal/format/raw.go
package format

import (
	"strings"

	"logviewer/src/internal/core"

	"github.com/lixenwraith/log"
)

// Outputs the entry exactly as it appears in the file
type RawFormatter struct {
	logger *log.Logger
}

// Creates a new raw formatter
func NewRawFormatter(logger *log.Logger) (*RawFormatter, error) {
	return &RawFormatter{
		logger: logger,
	}, nil
}

// Returns the raw lines, newline terminated
func (f *RawFormatter) Format(entry core.FormattedEntry) ([]byte, error) {
	if strings.HasSuffix(entry.Raw, "\n") {
		return []byte(entry.Raw), nil
	}
	return append([]byte(entry.Raw), '\n'), nil
}

// Returns the formatter name
func (f *RawFormatter) Name() string {
	return "raw"
}
