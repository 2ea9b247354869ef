// FILE: logviewer/src/internal/config/validation.go
package config

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

// Validate checks the whole configuration. Regex patterns are compiled
// here so malformed ones fail at startup rather than per request.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ConfigError{Section: "root", Err: fmt.Errorf("config is nil")}
	}

	if err := validateViewer(&cfg.Viewer); err != nil {
		return &ConfigError{Section: "viewer", Err: err}
	}

	if err := validateOutput(&cfg.Output); err != nil {
		return &ConfigError{Section: "output", Err: err}
	}

	if err := validateServer(&cfg.Server); err != nil {
		return &ConfigError{Section: "server", Err: err}
	}

	if err := validateLogConfig(&cfg.Logging); err != nil {
		return &ConfigError{Section: "logging", Err: err}
	}

	return nil
}

func validateViewer(v *ViewerConfig) error {
	if err := lconfig.NonEmpty(v.Directory); err != nil {
		return fmt.Errorf("directory: %w", err)
	}

	for i, name := range v.Files {
		if err := validateFileName(name); err != nil {
			return fmt.Errorf("files[%d]: %w", i, err)
		}
	}

	if v.FilesPattern != "" {
		if strings.ContainsAny(v.FilesPattern, `/\`) {
			return fmt.Errorf("files_pattern must not contain path separators: %s", v.FilesPattern)
		}
		if _, err := path.Match(v.FilesPattern, ""); err != nil {
			return fmt.Errorf("files_pattern '%s': %w", v.FilesPattern, err)
		}
	}

	if v.PageLength < 1 {
		return fmt.Errorf("page_length must be at least 1: %d", v.PageLength)
	}
	if v.MaxReadLines < 1 {
		return fmt.Errorf("max_read_lines must be at least 1: %d", v.MaxReadLines)
	}
	if v.MaxGrowthLines < 0 {
		return fmt.Errorf("max_growth_lines cannot be negative: %d", v.MaxGrowthLines)
	}
	if v.ReadTimeoutMS < 0 {
		return fmt.Errorf("read_timeout_ms cannot be negative: %d", v.ReadTimeoutMS)
	}
	if v.Refresh.IntervalMS < 0 {
		return fmt.Errorf("refresh interval_ms cannot be negative: %d", v.Refresh.IntervalMS)
	}

	if v.ExcludePattern != "" {
		if _, err := regexp.Compile(v.ExcludePattern); err != nil {
			return fmt.Errorf("exclude_pattern '%s': invalid regex: %w", v.ExcludePattern, err)
		}
	}

	for i := range v.Filters {
		if err := validateFilter(i, &v.Filters[i]); err != nil {
			return err
		}
	}

	names := make(map[string]bool)
	for i, f := range v.Formats {
		if err := lconfig.NonEmpty(f.Name); err != nil {
			return fmt.Errorf("format[%d]: missing name", i)
		}
		if names[f.Name] {
			return fmt.Errorf("format[%d]: duplicate name '%s'", i, f.Name)
		}
		names[f.Name] = true

		if err := lconfig.NonEmpty(f.Pattern); err != nil {
			return fmt.Errorf("format '%s': missing pattern", f.Name)
		}
		if _, err := regexp.Compile(f.Pattern); err != nil {
			return fmt.Errorf("format '%s': invalid regex: %w", f.Name, err)
		}
		for _, glob := range f.Files {
			if _, err := path.Match(glob, ""); err != nil {
				return fmt.Errorf("format '%s': bad file glob '%s': %w", f.Name, glob, err)
			}
		}
	}

	if v.DefaultFormat != "" && !names[v.DefaultFormat] {
		return fmt.Errorf("default_format '%s' is not defined", v.DefaultFormat)
	}

	return nil
}

// validateFileName rejects names that could escape the log directory
func validateFileName(name string) error {
	if err := lconfig.NonEmpty(name); err != nil {
		return fmt.Errorf("empty file name")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name must not contain path separators: %s", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid file name: %s", name)
	}
	return nil
}

func validateOutput(o *OutputConfig) error {
	switch o.Format {
	case "", "text", "txt", "json", "raw":
	default:
		return fmt.Errorf("unknown format: %s", o.Format)
	}
	return nil
}

func validateServer(s *ServerConfig) error {
	if err := lconfig.Port(s.Port); err != nil {
		return err
	}

	if s.Host != "" && s.Host != "0.0.0.0" {
		if err := lconfig.IPAddress(s.Host); err != nil {
			return err
		}
	}

	if !strings.HasPrefix(s.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", s.BasePath)
	}
	if !strings.HasPrefix(s.StatusPath, "/") {
		return fmt.Errorf("status_path must start with /: %s", s.StatusPath)
	}
	base := strings.TrimSuffix(s.BasePath, "/")
	if base != "" && strings.HasPrefix(s.StatusPath, base+"/") {
		return fmt.Errorf("status_path '%s' conflicts with base_path '%s'", s.StatusPath, s.BasePath)
	}

	if s.ReadTimeoutMS < 0 || s.WriteTimeoutMS < 0 {
		return fmt.Errorf("timeouts cannot be negative")
	}

	if err := validateTLS(&s.TLS); err != nil {
		return err
	}
	if err := validateAuth(&s.Auth); err != nil {
		return err
	}
	if err := validateRateLimit(&s.RateLimit); err != nil {
		return err
	}
	return validateNetAccess(&s.NetAccess)
}
