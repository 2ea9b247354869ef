// FILE: logviewer/src/internal/parser/level.go
package parser

import (
	"regexp"
	"strings"

	"logviewer/src/internal/core"
)

var (
	levelPattern = regexp.MustCompile(`(?i)(DEBUG|INFO|WARNING|ERROR|CRITICAL)`)
	warnPattern  = regexp.MustCompile(`(?i)WARN`)
)

// ClassifyLevel returns the leftmost level keyword found in text.
// WARN is only considered when no full level name is present.
func ClassifyLevel(text string) core.Level {
	if m := levelPattern.FindString(text); m != "" {
		return core.Level(strings.ToUpper(m))
	}
	if warnPattern.MatchString(text) {
		return core.LevelWarning
	}
	return core.LevelInfo
}

// NormalizeLevel maps a captured level token onto the standard set
func NormalizeLevel(s string) core.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL", "CRIT", "FATAL":
		return core.LevelCritical
	case "ERROR", "ERR":
		return core.LevelError
	case "WARNING", "WARN":
		return core.LevelWarning
	case "DEBUG", "TRACE":
		return core.LevelDebug
	case "INFO":
		return core.LevelInfo
	default:
		return ClassifyLevel(s)
	}
}
