// FILE: logviewer/src/internal/tui/render.go
package tui

import (
	"fmt"
	"strings"

	"logviewer/src/internal/core"
	"logviewer/src/internal/service"
)

// renderEntries lays out one page of entries for the viewport.
// Continuation lines of expanded entries are indented under the message.
func renderEntries(entries []core.FormattedEntry, styles Styles, full bool) string {
	if len(entries) == 0 {
		return styles.Muted.Render("No entries")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}

		content := e.Content
		if full {
			content = e.FullContent
		}

		b.WriteString(styles.LineRange.Render(e.LineRange))
		b.WriteString(" ")
		b.WriteString(styles.Level(e.Level).Render(string(e.Level)))
		if e.Module != "" {
			b.WriteString(" ")
			b.WriteString(styles.Module.Render("[" + e.Module + "]"))
		}
		b.WriteString(" ")

		lines := strings.Split(content, "\n")
		b.WriteString(lines[0])
		for _, l := range lines[1:] {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", 19))
			b.WriteString(l)
		}
	}
	return b.String()
}

// renderHeader summarizes the file and page position
func renderHeader(name string, view *service.PageView, styles Styles, width int) string {
	text := name
	if view != nil {
		text = fmt.Sprintf("%s  page %d/%d  entries %s of %d",
			name, view.CurrentPage, view.TotalPages, entrySpan(view.StartLine, view.EndLine), view.TotalEntries)
		if view.Truncated {
			text += "  (read window truncated)"
		}
	}
	st := styles.Header
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(text)
}

func entrySpan(start, end int) string {
	if end < start || start == 0 {
		return "none"
	}
	return fmt.Sprintf("%d-%d", start, end)
}
