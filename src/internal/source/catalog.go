// FILE: logviewer/src/internal/source/catalog.go
package source

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"logviewer/src/internal/config"
	"logviewer/src/internal/core"

	"github.com/lixenwraith/log"
)

// Catalog enumerates the log files a viewer is allowed to serve
type Catalog struct {
	directory string
	files     []string
	pattern   string
	logger    *log.Logger
}

// NewCatalog creates a catalog over the configured directory
func NewCatalog(cfg *config.ViewerConfig, logger *log.Logger) *Catalog {
	return &Catalog{
		directory: cfg.Directory,
		files:     cfg.Files,
		pattern:   cfg.FilesPattern,
		logger:    logger,
	}
}

// List returns configured files that currently exist, followed by files
// matching the discovery pattern. Missing files are skipped.
func (c *Catalog) List() []core.LogFile {
	names := c.candidates()
	files := make([]core.LogFile, 0, len(names))

	for _, name := range names {
		fullPath := filepath.Join(c.directory, name)
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, core.LogFile{
			Name:     name,
			Path:     fullPath,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	return files
}

// Lookup resolves a file name from the listing
func (c *Catalog) Lookup(name string) (core.LogFile, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return core.LogFile{}, core.ErrNotFound
	}

	for _, f := range c.List() {
		if f.Name == name {
			return f, nil
		}
	}
	return core.LogFile{}, core.ErrNotFound
}

// Directory returns the root directory of the catalog
func (c *Catalog) Directory() string {
	return c.directory
}

// candidates returns unique file names in listing order
func (c *Catalog) candidates() []string {
	seen := make(map[string]bool, len(c.files))
	names := make([]string, 0, len(c.files))

	for _, name := range c.files {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if c.pattern == "" {
		return names
	}

	entries, err := os.ReadDir(c.directory)
	if err != nil {
		c.logger.Debug("msg", "Failed to scan log directory",
			"component", "catalog",
			"directory", c.directory,
			"error", err)
		return names
	}

	var discovered []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ok, _ := path.Match(c.pattern, name); ok && !seen[name] {
			seen[name] = true
			discovered = append(discovered, name)
		}
	}
	sort.Strings(discovered)

	return append(names, discovered...)
}
