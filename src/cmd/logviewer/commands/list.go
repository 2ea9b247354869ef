// FILE: logviewer/src/cmd/logviewer/commands/list.go
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

// ListCommand prints the available log files
type ListCommand struct {
	output io.Writer
	errOut io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{output: os.Stdout, errOut: os.Stderr}
}

func (c *ListCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("list", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)

	var (
		configPath = cmd.String("c", "", "Config file path")
		directory  = cmd.String("dir", "", "Log directory (overrides config)")
		asJSON     = cmd.Bool("json", false, "Print JSON")
	)

	if err := cmd.Parse(args); err != nil {
		return err
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

	list := session.service.ListFiles()

	if *asJSON {
		enc := json.NewEncoder(c.output)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	if len(list.LogFiles) == 0 {
		fmt.Fprintln(c.errOut, "No log files available")
		return nil
	}

	w := tabwriter.NewWriter(c.output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
	for _, f := range list.LogFiles {
		fmt.Fprintf(w, "%s\t%d\t%s\n", f.Name, f.Size, f.Modified.Format(time.DateTime))
	}
	return w.Flush()
}

func (c *ListCommand) Description() string {
	return "List available log files"
}

func (c *ListCommand) Help() string {
	return `List Command - List available log files

Usage:
  logviewer list [options]

Options:
  -c <path>      Config file path
  -dir <path>    Log directory (overrides viewer.directory)
  -json          Print the listing as JSON
`
}
