// FILE: logviewer/src/cmd/logviewer/flags.go
package main

import (
	"fmt"
	"strings"
)

// FlagConfig holds the server flags handled before configuration loads
type FlagConfig struct {
	ConfigFile  string
	Quiet       bool
	ShowVersion bool

	// "--section.key=value" arguments forwarded to the config loader
	Overrides []string
}

// splitArgs separates entry-point flags from configuration overrides
func splitArgs(args []string) (*FlagConfig, error) {
	fc := &FlagConfig{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "--config" || arg == "-config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a path", arg)
			}
			i++
			fc.ConfigFile = args[i]
		case strings.HasPrefix(arg, "--config="):
			fc.ConfigFile = strings.TrimPrefix(arg, "--config=")
		case arg == "-q" || arg == "--quiet":
			fc.Quiet = true
		case arg == "-v" || arg == "--version":
			fc.ShowVersion = true
		case strings.HasPrefix(arg, "--") && strings.Contains(arg, "."):
			// Either "--a.b=v" or "--a.b v"
			if !strings.Contains(arg, "=") {
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
					fc.Overrides = append(fc.Overrides, arg+"=true")
					continue
				}
				i++
				arg = arg + "=" + args[i]
			}
			fc.Overrides = append(fc.Overrides, arg)
		default:
			return nil, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return fc, nil
}
