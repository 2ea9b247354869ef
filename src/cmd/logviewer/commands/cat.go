// FILE: logviewer/src/cmd/logviewer/commands/cat.go
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"logviewer/src/internal/core"
	"logviewer/src/internal/format"
)

// CatCommand prints one page of a log file
type CatCommand struct {
	output io.Writer
	errOut io.Writer
}

func NewCatCommand() *CatCommand {
	return &CatCommand{output: os.Stdout, errOut: os.Stderr}
}

func (c *CatCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("cat", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)

	var (
		configPath = cmd.String("c", "", "Config file path")
		directory  = cmd.String("dir", "", "Log directory (overrides config)")
		fileName   = cmd.String("file", "", "Log file name")
		page       = cmd.Int("page", 1, "Page number (1-based)")
		pageLength = cmd.Int("page-length", 0, "Entries per page (0 = configured)")
		outFormat  = cmd.String("format", "", "Output format: text, json, raw")
		full       = cmd.Bool("full", false, "Print full entries instead of previews")
		pretty     = cmd.Bool("pretty", false, "Indent JSON output")
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
	if *outFormat != "" {
		overrides = append(overrides, "--output.format="+*outFormat)
	}
	if *full {
		overrides = append(overrides, "--output.full=true")
	}
	if *pretty {
		overrides = append(overrides, "--output.pretty=true")
	}

	session, err := openViewer(*configPath, overrides)
	if err != nil {
		return err
	}
	defer session.Close()

	view, err := session.service.Page(context.Background(), *fileName, *page, *pageLength)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("log file not found: %s", *fileName)
		}
		return err
	}

	formatter, err := format.New(&session.cfg.Output, session.logger)
	if err != nil {
		return err
	}

	if jf, ok := formatter.(*format.JSONFormatter); ok {
		data, err := jf.FormatBatch(view.Entries)
		if err != nil {
			return err
		}
		_, err = c.output.Write(data)
		return err
	}

	for _, entry := range view.Entries {
		data, err := formatter.Format(entry)
		if err != nil {
			return fmt.Errorf("failed to format entry %d: %w", entry.Number, err)
		}
		if _, err := c.output.Write(data); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.errOut, "-- %s: page %d/%d, entries %s of %d",
		view.Filename, view.CurrentPage, view.TotalPages, entrySpan(view.StartLine, view.EndLine), view.TotalEntries)
	if view.Truncated {
		fmt.Fprint(c.errOut, " (read window truncated)")
	}
	fmt.Fprintln(c.errOut)

	return view.Err
}

func entrySpan(start, end int) string {
	if end < start {
		return "none"
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

func (c *CatCommand) Description() string {
	return "Print a page of a log file"
}

func (c *CatCommand) Help() string {
	return `Cat Command - Print one page of a log file

Usage:
  logviewer cat [options] [file]

Options:
  -c <path>           Config file path
  -dir <path>         Log directory (overrides viewer.directory)
  -file <name>        Log file name, as shown by 'logviewer list'
  -page <n>           Page number, 1-based (default: 1)
  -page-length <n>    Entries per page (default: viewer.page_length)
  -format <fmt>       Output format: text, json, raw (default: output.format)
  -full               Print full entries instead of previews
  -pretty             Indent JSON output

Examples:
  logviewer cat -file django.log
  logviewer cat -file django.log -page 3 -format json -pretty
`
}
