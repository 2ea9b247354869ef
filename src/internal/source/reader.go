// FILE: logviewer/src/internal/source/reader.go
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"logviewer/src/internal/core"
	"logviewer/src/internal/parser"

	"github.com/lixenwraith/log"
)

// Lines between context checks
const ctxCheckInterval = 256

// LineFilter decides whether a physical line is kept before grouping
type LineFilter interface {
	Apply(line string) bool
}

// Page is the result of one bounded read. Counts are a snapshot of the
// file at read time.
type Page struct {
	Entries []core.LogicalEntry

	// Entries in the read window, after filtering and grouping
	TotalEntries int
	// Physical lines in the read window, after filtering
	TotalLines int

	// Entry index range [StartEntry, EndEntry) of Entries
	StartEntry int
	EndEntry   int

	// Physical line span covered by Entries, 0 when empty
	FirstLine int
	LastLine  int

	// File continues past the read window
	Truncated bool

	// nil, core.ErrNotFound or a *core.ReadError
	Err error
}

// Reader reads entry-aligned pages from log files. Every read starts at
// the first line of the file.
type Reader struct {
	maxReadLines   int
	maxGrowthLines int
	filter         LineFilter
	logger         *log.Logger
}

// NewReader creates a reader. filter may be nil.
func NewReader(maxReadLines, maxGrowthLines int, filter LineFilter, logger *log.Logger) *Reader {
	if maxReadLines < 1 {
		maxReadLines = core.DefaultMaxReadLines
	}
	if maxGrowthLines < 0 {
		maxGrowthLines = 0
	}
	return &Reader{
		maxReadLines:   maxReadLines,
		maxGrowthLines: maxGrowthLines,
		filter:         filter,
		logger:         logger,
	}
}

// ReadPage returns up to maxEntries entries starting at entry index
// startEntry. Failures are reported through Page.Err; a read failure
// yields a single synthetic entry carrying the message.
func (r *Reader) ReadPage(ctx context.Context, path string, c parser.LineClassifier, maxEntries, startEntry int) Page {
	if c == nil {
		c = parser.DefaultClassifier{}
	}

	lines, truncated, err := r.readLines(ctx, path, c)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return Page{Entries: []core.LogicalEntry{}, Err: core.ErrNotFound}
		}
		r.logger.Warn("msg", "Failed to read log file",
			"component", "reader",
			"path", path,
			"error", err)
		return errorPage(err)
	}

	kept := lines
	if r.filter != nil {
		kept = make([]core.RawLine, 0, len(lines))
		for _, l := range lines {
			if r.filter.Apply(l.Text) {
				kept = append(kept, l)
			}
		}
	}

	entries := parser.Assemble(kept, c)

	if maxEntries < 1 {
		maxEntries = 1
	}
	if startEntry < 0 {
		startEntry = 0
	}
	start := min(startEntry, len(entries))
	end := min(start+maxEntries, len(entries))

	page := Page{
		Entries:      entries[start:end],
		TotalEntries: len(entries),
		TotalLines:   len(kept),
		StartEntry:   start,
		EndEntry:     end,
		Truncated:    truncated,
	}
	if end > start {
		page.FirstLine = entries[start].FirstLine()
		page.LastLine = entries[end-1].LastLine()
	}

	return page
}

// readLines reads up to maxReadLines lines, then keeps reading while the
// lines continue an entry opened by a start line, so the last entry of
// the window is complete. Invalid UTF-8 sequences are dropped.
func (r *Reader) readLines(ctx context.Context, path string, c parser.LineClassifier) ([]core.RawLine, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, core.ErrNotFound
		}
		return nil, false, &core.ReadError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, false, &core.ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, false, &core.ReadError{Path: path, Err: fmt.Errorf("is a directory")}
	}

	br := bufio.NewReaderSize(f, 64*1024)
	lines := make([]core.RawLine, 0, min(r.maxReadLines, 1024))
	openStart := false
	grown := 0

	for {
		if len(lines)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, false, &core.ReadError{Path: path, Err: err}
			}
		}

		text, readErr := br.ReadString('\n')
		if len(text) > 0 {
			text = strings.ToValidUTF8(text, "")
			isStart := c.IsEntryStart(text)

			if len(lines) >= r.maxReadLines {
				if isStart || !openStart {
					return lines, true, nil
				}
				if grown >= r.maxGrowthLines {
					r.logger.Warn("msg", "Entry exceeds growth limit, truncating",
						"component", "reader",
						"path", path,
						"max_read_lines", r.maxReadLines,
						"max_growth_lines", r.maxGrowthLines)
					return lines, true, nil
				}
				grown++
			}

			lines = append(lines, core.RawLine{Number: len(lines) + 1, Text: text})
			if isStart {
				openStart = true
			}
		}

		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return nil, false, &core.ReadError{Path: path, Err: readErr}
		}
	}

	if grown > 0 {
		r.logger.Debug("msg", "Read window grown to complete trailing entry",
			"component", "reader",
			"path", path,
			"extra_lines", grown)
	}

	return lines, false, nil
}

func errorPage(err error) Page {
	return Page{
		Entries: []core.LogicalEntry{{Content: "Error reading file: " + err.Error()}},
		Err:     err,
	}
}
