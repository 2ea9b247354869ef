// FILE: logviewer/src/cmd/logviewer/commands/view.go
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"logviewer/src/internal/core"
	"logviewer/src/internal/tui"
)

// ViewCommand opens a log file in the interactive pager
type ViewCommand struct {
	errOut io.Writer

	// Replaced in tests
	run func(tui.Options) error
}

func NewViewCommand() *ViewCommand {
	return &ViewCommand{errOut: os.Stderr, run: tui.Run}
}

func (c *ViewCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("view", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)

	var (
		configPath = cmd.String("c", "", "Config file path")
		directory  = cmd.String("dir", "", "Log directory (overrides config)")
		fileName   = cmd.String("file", "", "Log file name")
		page       = cmd.Int("page", 1, "Initial page (1-based)")
		pageLength = cmd.Int("page-length", 0, "Entries per page (0 = configured)")
		full       = cmd.Bool("full", false, "Start with entries expanded")
		noRefresh  = cmd.Bool("no-refresh", false, "Start with auto refresh disabled")
	)

	if err := cmd.Parse(args); err != nil {
		return err
	}

	if *fileName == "" && cmd.NArg() > 0 {
		*fileName = cmd.Arg(0)
	}
	if *fileName == "" {
		return fmt.Errorf("log file name required (-file)")
	}

	var overrides []string
	if *directory != "" {
		overrides = append(overrides, "--viewer.directory="+*directory)
	}

	session, err := openViewer(*configPath, overrides)
	if err != nil {
		return err
	}
	defer session.Close()

	// Fail before taking over the terminal
	if _, err := session.service.Page(context.Background(), *fileName, 1, 1); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("log file not found: %s", *fileName)
		}
		return err
	}

	refresh := session.cfg.Viewer.Refresh
	if *noRefresh {
		refresh.AutoRefreshDefault = false
	}

	return c.run(tui.Options{
		Context:    context.Background(),
		Source:     session.service,
		File:       *fileName,
		Page:       *page,
		PageLength: *pageLength,
		Refresh:    refresh,
		Full:       *full,
		Logger:     session.logger,
	})
}

func (c *ViewCommand) Description() string {
	return "Browse a log file interactively"
}

func (c *ViewCommand) Help() string {
	return `View Command - Browse a log file in an interactive pager

Pages through entries like the detail view, with auto refresh driven by
[viewer.refresh]. Press ? inside the pager for key bindings.

Usage:
  logviewer view [options] [file]

Options:
  -c <path>           Config file path
  -dir <path>         Log directory (overrides viewer.directory)
  -file <name>        Log file name, as shown by 'logviewer list'
  -page <n>           Initial page, 1-based (default: 1)
  -page-length <n>    Entries per page (default: viewer.page_length)
  -full               Start with entries expanded
  -no-refresh         Start with auto refresh disabled

Examples:
  logviewer view django.log
  logviewer view -c /etc/logviewer.toml -file celery.log -no-refresh
`
}
