// FILE: logviewer/src/internal/parser/classifier.go
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"logviewer/src/internal/core"
)

// LineClassifier decides entry boundaries and extracts display fields
// for one log format.
type LineClassifier interface {
	// IsEntryStart reports whether a physical line opens a new entry
	IsEntryStart(line string) bool
	ExtractLevel(content string) core.Level
	ExtractTimestamp(content string) string
	ExtractModule(content string) string
	Name() string
}

var (
	entryStartPattern = regexp.MustCompile(`^(DEBUG|INFO|WARNING|ERROR|CRITICAL|WARN)\s+\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}`)
	timestampPattern  = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)
)

// DefaultClassifier handles lines of the form "LEVEL YYYY-MM-DD HH:MM:SS ...".
// Level matching on the boundary is case-sensitive.
type DefaultClassifier struct{}

func (DefaultClassifier) IsEntryStart(line string) bool {
	return entryStartPattern.MatchString(strings.TrimSpace(line))
}

func (DefaultClassifier) ExtractLevel(content string) core.Level {
	return ClassifyLevel(content)
}

func (DefaultClassifier) ExtractTimestamp(content string) string {
	return timestampPattern.FindString(content)
}

func (DefaultClassifier) ExtractModule(string) string {
	return ""
}

func (DefaultClassifier) Name() string {
	return "default"
}

// PatternClassifier uses a regex with optional named groups
// level, timestamp, module and message. A line starts an entry when
// the pattern matches at the beginning of the trimmed line.
type PatternClassifier struct {
	name     string
	re       *regexp.Regexp
	groupIdx map[string]int
}

// NewPatternClassifier compiles a named-group format pattern
func NewPatternClassifier(name, pattern string) (*PatternClassifier, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("invalid format pattern '%s': %w", name, err)
	}

	idx := make(map[string]int)
	for i, group := range re.SubexpNames() {
		if i == 0 || group == "" {
			continue
		}
		idx[group] = i
	}

	return &PatternClassifier{name: name, re: re, groupIdx: idx}, nil
}

func (p *PatternClassifier) IsEntryStart(line string) bool {
	return p.re.MatchString(strings.TrimSpace(line))
}

func (p *PatternClassifier) ExtractLevel(content string) core.Level {
	if v, ok := p.group(content, "level"); ok && v != "" {
		return NormalizeLevel(v)
	}
	return ClassifyLevel(content)
}

func (p *PatternClassifier) ExtractTimestamp(content string) string {
	if v, ok := p.group(content, "timestamp"); ok {
		return strings.TrimSpace(v)
	}
	return timestampPattern.FindString(content)
}

func (p *PatternClassifier) ExtractModule(content string) string {
	v, _ := p.group(content, "module")
	return strings.TrimSpace(v)
}

func (p *PatternClassifier) Name() string {
	return p.name
}

// group matches the first line of content and returns a named capture
func (p *PatternClassifier) group(content, name string) (string, bool) {
	i, ok := p.groupIdx[name]
	if !ok {
		return "", false
	}
	first := strings.TrimSpace(content)
	if nl := strings.IndexByte(first, '\n'); nl >= 0 {
		first = strings.TrimSpace(first[:nl])
	}
	m := p.re.FindStringSubmatch(first)
	if m == nil {
		return "", false
	}
	return m[i], true
}
