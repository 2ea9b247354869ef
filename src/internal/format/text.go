// FILE: logviewer/src/internal/format/text.go
package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"logviewer/src/internal/config"
	"logviewer/src/internal/core"

	"github.com/lixenwraith/log"
)

const DefaultTextTemplate = `{{Pad .LineRange 9}} {{Pad .Level 8}} {{.Timestamp}}{{if .Module}} [{{.Module}}]{{end}} {{.Content}}`

// Produces human-readable lines using templates
type TextFormatter struct {
	template *template.Template
	full     bool
	logger   *log.Logger
}

// Creates a new text formatter
func NewTextFormatter(cfg *config.OutputConfig, logger *log.Logger) (*TextFormatter, error) {
	f := &TextFormatter{logger: logger}

	tmplText := DefaultTextTemplate
	if cfg != nil {
		f.full = cfg.Full
		if cfg.Template != "" {
			tmplText = cfg.Template
		}
	}

	funcMap := template.FuncMap{
		"ToUpper":   strings.ToUpper,
		"ToLower":   strings.ToLower,
		"TrimSpace": strings.TrimSpace,
		"Pad": func(v any, width int) string {
			return fmt.Sprintf("%-*v", width, v)
		},
	}

	tmpl, err := template.New("entry").Funcs(funcMap).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	f.template = tmpl
	return f, nil
}

// Formats the entry using the template
func (f *TextFormatter) Format(entry core.FormattedEntry) ([]byte, error) {
	content := entry.Content
	if f.full {
		content = entry.FullContent
	}

	data := map[string]any{
		"Number":      entry.Number,
		"LineRange":   entry.LineRange,
		"Level":       string(entry.Level),
		"Timestamp":   entry.Timestamp,
		"Module":      entry.Module,
		"Content":     content,
		"FullContent": entry.FullContent,
		"LineCount":   entry.LineCount,
		"IsLong":      entry.IsLong,
		"IsMultiline": entry.IsMultiline,
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		f.logger.Debug("msg", "Template execution failed, using fallback",
			"component", "text_formatter",
			"error", err)

		fallback := fmt.Sprintf("%s [%s] %s\n", entry.LineRange, entry.Level, content)
		return []byte(fallback), nil
	}

	result := buf.Bytes()
	if len(result) == 0 || result[len(result)-1] != '\n' {
		result = append(result, '\n')
	}

	return result, nil
}

// Returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}
