// FILE: logviewer/src/cmd/logviewer/commands/router.go
package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Handler defines the interface required for all subcommands.
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// CommandRouter routes CLI arguments to subcommand handlers.
type CommandRouter struct {
	commands map[string]Handler
	output   io.Writer
}

// NewCommandRouter creates the router with all available commands.
func NewCommandRouter() *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		output:   os.Stdout,
	}

	router.commands["list"] = NewListCommand()
	router.commands["cat"] = NewCatCommand()
	router.commands["config"] = NewConfigCommand()
	router.commands["auth"] = NewAuthCommand()
	router.commands["view"] = NewViewCommand()
	router.commands["version"] = NewVersionCommand()
	router.commands["help"] = NewHelpCommand(router)

	return router
}

// Route executes a subcommand if args name one. The first result reports
// whether a command handled the invocation.
func (r *CommandRouter) Route(args []string) (bool, error) {
	if len(args) < 2 {
		return false, nil
	}

	cmdName := args[1]

	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			if handler, exists := r.commands[cmdName]; exists && cmdName != "help" {
				fmt.Fprint(r.output, handler.Help())
				return true, nil
			}
			return true, r.commands["help"].Execute(nil)
		}
	}

	handler, exists := r.commands[cmdName]
	if !exists {
		if cmdName != "" && cmdName[0] != '-' {
			return false, fmt.Errorf("unknown command: %s\n\nRun 'logviewer help' for usage", cmdName)
		}
		// A flag, left to the server entry point
		return false, nil
	}

	return true, handler.Execute(args[2:])
}

// GetCommand returns a command handler by name.
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// Names returns the sorted command names.
func (r *CommandRouter) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
