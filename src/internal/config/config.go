// FILE: logviewer/src/internal/config/config.go
package config

// Config is the complete application configuration, built once at startup
type Config struct {
	Viewer  ViewerConfig `toml:"viewer"`
	Output  OutputConfig `toml:"output"`
	Server  ServerConfig `toml:"server"`
	Logging LogConfig    `toml:"logging"`

	// Runtime flags, not read from file
	Quiet bool `toml:"-"`
}

type ViewerConfig struct {
	// Directory holding the log files
	Directory string `toml:"directory"`

	// Explicitly listed file names inside Directory
	Files []string `toml:"files"`

	// Optional glob for discovering additional files, e.g. "*.log*"
	FilesPattern string `toml:"files_pattern"`

	// Title for the file listing
	Title string `toml:"title"`

	// Entries per page
	PageLength int `toml:"page_length"`

	// Physical line cap for one read
	MaxReadLines int `toml:"max_read_lines"`

	// Extra lines allowed past the cap to complete a trailing entry
	MaxGrowthLines int `toml:"max_growth_lines"`

	// Lines matching this regex are dropped before grouping
	ExcludePattern string `toml:"exclude_pattern"`

	// Wall-clock bound for one page read (0 = none)
	ReadTimeoutMS int64 `toml:"read_timeout_ms"`

	// Format used for files no format glob matches
	DefaultFormat string `toml:"default_format"`

	Filters []FilterConfig `toml:"filters"`
	Formats []FormatConfig `toml:"formats"`
	Refresh RefreshConfig  `toml:"refresh"`
}

// RefreshConfig is passed through to the page payload for clients that poll
type RefreshConfig struct {
	IntervalMS         int64 `toml:"interval_ms"`
	OnlyWhenActive     bool  `toml:"only_when_active"`
	AutoRefreshDefault bool  `toml:"auto_refresh_default"`
	AutoScrollToBottom bool  `toml:"auto_scroll_to_bottom"`
}

// FormatConfig declares a line format with named groups
// level, timestamp, module and message
type FormatConfig struct {
	Name    string   `toml:"name"`
	Pattern string   `toml:"pattern"`
	Files   []string `toml:"files"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	// "text", "json" or "raw"
	Format string `toml:"format"`

	// Indented JSON
	Pretty bool `toml:"pretty"`

	// text/template source for the text format
	Template string `toml:"template"`

	// Print full entries instead of previews
	Full bool `toml:"full"`
}
