// FILE: logviewer/src/internal/format/entry.go
package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"logviewer/src/internal/core"
	"logviewer/src/internal/parser"
)

// EntryFormatter turns logical entries into display records
type EntryFormatter struct {
	classifier parser.LineClassifier
}

// NewEntryFormatter uses the default classifier when c is nil
func NewEntryFormatter(c parser.LineClassifier) *EntryFormatter {
	if c == nil {
		c = parser.DefaultClassifier{}
	}
	return &EntryFormatter{classifier: c}
}

// Format builds the display record. fallbackNumber is used for entries
// that carry no line numbers.
func (f *EntryFormatter) Format(entry core.LogicalEntry, fallbackNumber int) core.FormattedEntry {
	content := entry.Content
	trimmed := strings.TrimSpace(content)
	lines := strings.Split(trimmed, "\n")

	isLong := len(lines) > core.LongEntryLines || utf8.RuneCountInString(content) > core.LongEntryChars

	preview := trimmed
	if isLong {
		preview = strings.TrimSpace(lines[0])
		if len(lines) > 1 {
			preview = fmt.Sprintf("%s ... (+%d more lines)", preview, len(lines)-1)
		}
	}

	number := fallbackNumber
	lineRange := strconv.Itoa(fallbackNumber)
	if len(entry.LineNumbers) > 0 {
		number = entry.FirstLine()
		lineRange = strconv.Itoa(number)
		if entry.IsMultiline() {
			lineRange = fmt.Sprintf("%d-%d", entry.FirstLine(), entry.LastLine())
		}
	}

	lineCount := entry.LineCount()
	if lineCount == 0 {
		lineCount = len(lines)
	}

	return core.FormattedEntry{
		Number:      number,
		LineRange:   lineRange,
		Level:       f.classifier.ExtractLevel(content),
		Timestamp:   f.classifier.ExtractTimestamp(content),
		Module:      f.classifier.ExtractModule(content),
		Content:     preview,
		FullContent: trimmed,
		IsMultiline: entry.IsMultiline(),
		IsLong:      isLong,
		LineCount:   lineCount,
		Raw:         content,
	}
}

// FormatAll formats a page of entries. startEntry is the 0-based index of
// the first entry, used to number entries without line numbers.
func (f *EntryFormatter) FormatAll(entries []core.LogicalEntry, startEntry int) []core.FormattedEntry {
	out := make([]core.FormattedEntry, len(entries))
	for i, e := range entries {
		out[i] = f.Format(e, startEntry+i+1)
	}
	return out
}
