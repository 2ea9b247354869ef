// FILE: logviewer/src/cmd/logviewer/commands/config.go
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"logviewer/src/internal/config"
)

// ConfigCommand prints or saves the effective configuration
type ConfigCommand struct {
	output io.Writer
	errOut io.Writer
}

func NewConfigCommand() *ConfigCommand {
	return &ConfigCommand{output: os.Stdout, errOut: os.Stderr}
}

func (c *ConfigCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("config", flag.ContinueOnError)
	cmd.SetOutput(c.errOut)

	var (
		configPath = cmd.String("c", "", "Config file path")
		directory  = cmd.String("dir", "", "Log directory (overrides config)")
		outPath    = cmd.String("o", "", "Write the configuration to this file")
	)

	// Config key overrides are not flags of this command
	var overrides, flagArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") && strings.Contains(arg, ".") {
			overrides = append(overrides, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
	}

	if err := cmd.Parse(flagArgs); err != nil {
		return err
	}
	if cmd.NArg() > 0 {
		return fmt.Errorf("unexpected argument(s): %s", strings.Join(cmd.Args(), " "))
	}

	if *directory != "" {
		overrides = append(overrides, "--viewer.directory="+*directory)
	}

	cfg, err := config.Load(*configPath, overrides)
	if err != nil {
		return err
	}

	if *outPath != "" {
		if err := cfg.SaveToFile(*outPath); err != nil {
			return err
		}
		fmt.Fprintf(c.errOut, "Configuration written to %s\n", *outPath)
		return nil
	}

	data, err := cfg.EncodeTOML()
	if err != nil {
		return err
	}
	_, err = c.output.Write(data)
	return err
}

func (c *ConfigCommand) Description() string {
	return "Show the effective configuration"
}

func (c *ConfigCommand) Help() string {
	return `Config Command - Show the effective configuration

Resolves defaults, the config file, LOGVIEWER_* variables and overrides,
then validates and prints the result as TOML.

Usage:
  logviewer config [options] [--section.key=value ...]

Options:
  -c <path>      Config file path
  -dir <path>    Log directory (overrides viewer.directory)
  -o <path>      Write to a file instead of stdout

Examples:
  logviewer config -c /etc/logviewer.toml
  logviewer config --viewer.page_length=50 -o logviewer.toml
`
}
