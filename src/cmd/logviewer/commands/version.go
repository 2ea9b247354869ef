// FILE: logviewer/src/cmd/logviewer/commands/version.go
package commands

import (
	"fmt"
	"io"
	"os"

	"logviewer/src/internal/version"
)

// VersionCommand handles version display
type VersionCommand struct {
	output io.Writer
}

func NewVersionCommand() *VersionCommand {
	return &VersionCommand{output: os.Stdout}
}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Fprintln(c.output, version.String())
	return nil
}

func (c *VersionCommand) Description() string {
	return "Show version information"
}

func (c *VersionCommand) Help() string {
	return `Version Command - Show LogViewer version information

Usage:
  logviewer version
  logviewer -v
  logviewer --version
`
}
