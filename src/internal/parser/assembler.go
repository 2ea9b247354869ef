// FILE: logviewer/src/internal/parser/assembler.go
package parser

import "logviewer/src/internal/core"

// Assemble groups physical lines into logical entries in a single pass.
// A continuation line with no open entry becomes an entry on its own.
func Assemble(lines []core.RawLine, c LineClassifier) []core.LogicalEntry {
	if len(lines) == 0 {
		return nil
	}

	entries := make([]core.LogicalEntry, 0)
	var open []core.RawLine

	for _, line := range lines {
		if c.IsEntryStart(line.Text) {
			if len(open) > 0 {
				entries = append(entries, core.NewLogicalEntry(open))
			}
			open = []core.RawLine{line}
			continue
		}

		if len(open) > 0 {
			open = append(open, line)
			continue
		}

		// Orphan continuation
		entries = append(entries, core.NewLogicalEntry([]core.RawLine{line}))
	}

	if len(open) > 0 {
		entries = append(entries, core.NewLogicalEntry(open))
	}

	return entries
}
