// FILE: logviewer/src/cmd/logviewer/commands/help.go
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const generalHelpTemplate = `LogViewer: paginated, multiline-aware log file viewer.

Usage:
  logviewer [command] [options]
  logviewer [options]

Commands:
%s

Server Options:
  -c, --config <path>      Path to configuration file (default: ~/.config/logviewer.toml)
  -q, --quiet              Suppress all console output, including errors
  -v, --version            Display version information and exit
  --<section>.<key>=<val>  Override any configuration value, e.g. --server.port=9090

For command-specific help:
  logviewer help <command>
  logviewer <command> --help

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - CLI overrides use the TOML key path: --viewer.page_length=50
  - Environment variables use the LOGVIEWER_ prefix: LOGVIEWER_VIEWER_PAGE_LENGTH=50
  - TOML configuration file is the primary method

Examples:
  # Serve /var/log/app on port 9090
  logviewer --viewer.directory=/var/log/app --server.port=9090

  # Print the second page of a file
  logviewer cat -file django.log -page 2

  # Browse a file with auto refresh
  logviewer view django.log
`

// HelpCommand displays general or command-specific help.
type HelpCommand struct {
	router *CommandRouter
	output io.Writer
}

func NewHelpCommand(router *CommandRouter) *HelpCommand {
	return &HelpCommand{router: router, output: os.Stdout}
}

func (c *HelpCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] != "" {
		if handler, exists := c.router.GetCommand(args[0]); exists {
			fmt.Fprint(c.output, handler.Help())
			return nil
		}
		return fmt.Errorf("unknown command: %s", args[0])
	}

	fmt.Fprintf(c.output, generalHelpTemplate, c.formatCommandList())
	return nil
}

func (c *HelpCommand) Description() string {
	return "Display help information"
}

func (c *HelpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  logviewer help              Show general help
  logviewer help <command>    Show help for a specific command
`
}

// formatCommandList aligns command names and descriptions
func (c *HelpCommand) formatCommandList() string {
	names := c.router.Names()
	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		handler, _ := c.router.GetCommand(name)
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		lines = append(lines, fmt.Sprintf("  %s%s%s", name, padding, handler.Description()))
	}
	return strings.Join(lines, "\n")
}
