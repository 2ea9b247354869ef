// FILE: logviewer/src/internal/service/service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"logviewer/src/internal/config"
	"logviewer/src/internal/core"
	"logviewer/src/internal/filter"
	"logviewer/src/internal/format"
	"logviewer/src/internal/parser"
	"logviewer/src/internal/source"

	"github.com/lixenwraith/log"
)

// Service exposes the log catalog and paginated reads of its files
type Service struct {
	config   *config.ViewerConfig
	catalog  *source.Catalog
	reader   *source.Reader
	registry *parser.Registry
	chain    *filter.Chain
	logger   *log.Logger

	startTime time.Time

	// Statistics
	totalReads  atomic.Uint64
	readErrors  atomic.Uint64
	notFound    atomic.Uint64
	truncations atomic.Uint64
}

// PageView is one page of formatted entries plus pagination state
type PageView struct {
	Title    string       `json:"title"`
	Filename string       `json:"filename"`
	File     core.LogFile `json:"log_file"`

	Entries []core.FormattedEntry `json:"log_lines"`

	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	PageLength   int `json:"page_length"`
	TotalEntries int `json:"total_entries"`
	TotalLines   int `json:"total_lines"`

	// 1-based entry index range of this page, inclusive
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`

	// Physical line span of this page
	FirstLine int `json:"first_line"`
	LastLine  int `json:"last_line"`

	Truncated bool   `json:"truncated"`
	Error     string `json:"error,omitempty"`

	RefreshInterval       int64 `json:"refresh_interval"`
	OnlyRefreshWhenActive bool  `json:"only_refresh_when_active"`
	AutoRefreshDefault    bool  `json:"auto_refresh_default"`
	AutoScrollToBottom    bool  `json:"auto_scroll_to_bottom"`

	// Read failure, if any
	Err error `json:"-"`
}

// AjaxView is the reduced payload used by polling clients
type AjaxView struct {
	Entries      []core.FormattedEntry `json:"log_lines"`
	TotalEntries int                   `json:"total_entries"`
	TotalLines   int                   `json:"total_lines"`
	StartLine    int                   `json:"start_line"`
	EndLine      int                   `json:"end_line"`
	CurrentPage  int                   `json:"current_page"`
	TotalPages   int                   `json:"total_pages"`
	Error        string                `json:"error,omitempty"`
}

// Ajax reduces the view to the polling payload
func (p *PageView) Ajax() AjaxView {
	return AjaxView{
		Entries:      p.Entries,
		TotalEntries: p.TotalEntries,
		TotalLines:   p.TotalLines,
		StartLine:    p.StartLine,
		EndLine:      p.EndLine,
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		Error:        p.Error,
	}
}

// ListView is the file listing payload
type ListView struct {
	Title    string         `json:"title"`
	LogFiles []core.LogFile `json:"log_files"`
}

// NewService compiles filters and formats. Malformed patterns fail here, never per request.
func NewService(cfg *config.ViewerConfig, logger *log.Logger) (*Service, error) {
	chain, err := filter.NewViewerChain(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter chain: %w", err)
	}

	registry, err := parser.NewRegistry(cfg.Formats, cfg.DefaultFormat, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build format registry: %w", err)
	}

	var lineFilter source.LineFilter
	if chain.Len() > 0 {
		lineFilter = chain
	}

	s := &Service{
		config:    cfg,
		catalog:   source.NewCatalog(cfg, logger),
		reader:    source.NewReader(cfg.MaxReadLines, cfg.MaxGrowthLines, lineFilter, logger),
		registry:  registry,
		chain:     chain,
		logger:    logger,
		startTime: time.Now(),
	}

	logger.Info("msg", "Log viewer service initialized",
		"component", "service",
		"directory", cfg.Directory,
		"files", len(cfg.Files),
		"files_pattern", cfg.FilesPattern,
		"filters", chain.Len(),
		"max_read_lines", cfg.MaxReadLines)

	return s, nil
}

// ListFiles returns the files currently available for viewing
func (s *Service) ListFiles() ListView {
	files := s.catalog.List()
	if files == nil {
		files = []core.LogFile{}
	}
	return ListView{Title: s.config.Title, LogFiles: files}
}

// Page reads the 1-based page of a named file. An unknown name returns
// core.ErrNotFound; read failures are reported in the view.
func (s *Service) Page(ctx context.Context, name string, page, pageLength int) (*PageView, error) {
	file, err := s.catalog.Lookup(name)
	if err != nil {
		s.notFound.Add(1)
		return nil, err
	}

	if pageLength < 1 {
		pageLength = s.config.PageLength
	}
	if pageLength < 1 {
		pageLength = core.DefaultPageLength
	}
	if page < 1 {
		page = 1
	}

	if s.config.ReadTimeoutMS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.config.ReadTimeoutMS)*time.Millisecond)
		defer cancel()
	}

	classifier := s.registry.ClassifierFor(file.Name)
	startEntry := math.MaxInt
	if page-1 <= math.MaxInt/pageLength {
		startEntry = (page - 1) * pageLength
	}

	s.totalReads.Add(1)
	result := s.reader.ReadPage(ctx, file.Path, classifier, pageLength, startEntry)

	if errors.Is(result.Err, core.ErrNotFound) {
		// Removed between lookup and read
		s.notFound.Add(1)
		return nil, core.ErrNotFound
	}

	view := &PageView{
		Title:                 fmt.Sprintf("Log Viewer - %s", file.Name),
		Filename:              file.Name,
		File:                  file,
		Entries:               format.NewEntryFormatter(classifier).FormatAll(result.Entries, startEntry),
		CurrentPage:           page,
		TotalPages:            totalPages(result.TotalEntries, pageLength),
		PageLength:            pageLength,
		TotalEntries:          result.TotalEntries,
		TotalLines:            result.TotalLines,
		StartLine:             result.StartEntry + 1,
		EndLine:               result.EndEntry,
		FirstLine:             result.FirstLine,
		LastLine:              result.LastLine,
		Truncated:             result.Truncated,
		RefreshInterval:       s.config.Refresh.IntervalMS,
		OnlyRefreshWhenActive: s.config.Refresh.OnlyWhenActive,
		AutoRefreshDefault:    s.config.Refresh.AutoRefreshDefault,
		AutoScrollToBottom:    s.config.Refresh.AutoScrollToBottom,
		Err:                   result.Err,
	}

	if result.Err != nil {
		s.readErrors.Add(1)
		view.Error = result.Err.Error()
		view.StartLine = 0
	}
	if result.Truncated {
		s.truncations.Add(1)
	}

	return view, nil
}

// totalPages is ceil(entries/pageLength), at least 1
func totalPages(entries, pageLength int) int {
	if entries <= 0 {
		return 1
	}
	return (entries + pageLength - 1) / pageLength
}

// GetStats returns read statistics
func (s *Service) GetStats() map[string]any {
	return map[string]any{
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
		"directory":      s.config.Directory,
		"files":          len(s.catalog.List()),
		"total_reads":    s.totalReads.Load(),
		"read_errors":    s.readErrors.Load(),
		"not_found":      s.notFound.Load(),
		"truncations":    s.truncations.Load(),
		"max_read_lines": s.config.MaxReadLines,
		"filters":        s.chain.GetStats(),
	}
}
