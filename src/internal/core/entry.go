// FILE: logviewer/src/internal/core/entry.go
package core

import (
	"strings"
	"time"
)

// Level is a normalized severity name
type Level string

const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// RawLine is one physical line as read from disk, newline included.
// Number is 1-based.
type RawLine struct {
	Number int
	Text   string
}

// LogicalEntry groups the physical lines of one log message.
// LineNumbers are strictly increasing and refer to the file before filtering.
type LogicalEntry struct {
	LineNumbers []int
	Content     string
}

// NewLogicalEntry builds an entry from consecutive raw lines
func NewLogicalEntry(lines []RawLine) LogicalEntry {
	numbers := make([]int, len(lines))
	var sb strings.Builder
	for i, l := range lines {
		numbers[i] = l.Number
		sb.WriteString(l.Text)
	}
	return LogicalEntry{LineNumbers: numbers, Content: sb.String()}
}

func (e LogicalEntry) IsMultiline() bool {
	return len(e.LineNumbers) > 1
}

func (e LogicalEntry) LineCount() int {
	return len(e.LineNumbers)
}

// FirstLine returns 0 for synthetic entries without line numbers
func (e LogicalEntry) FirstLine() int {
	if len(e.LineNumbers) == 0 {
		return 0
	}
	return e.LineNumbers[0]
}

func (e LogicalEntry) LastLine() int {
	if len(e.LineNumbers) == 0 {
		return 0
	}
	return e.LineNumbers[len(e.LineNumbers)-1]
}

// FormattedEntry is the display record handed to renderers
type FormattedEntry struct {
	Number      int    `json:"number"`
	LineRange   string `json:"line_range"`
	Level       Level  `json:"level"`
	Timestamp   string `json:"timestamp"`
	Module      string `json:"module,omitempty"`
	Content     string `json:"content"`
	FullContent string `json:"full_content"`
	IsMultiline bool   `json:"is_multiline"`
	IsLong      bool   `json:"is_long"`
	LineCount   int    `json:"line_count"`
	Raw         string `json:"raw"`
}

// LogFile describes a log file available for viewing
type LogFile struct {
	Name     string    `json:"name"`
	Path     string    `json:"-"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}
