// FILE: logviewer/src/internal/config/errors.go
package config

import "fmt"

// ConfigError reports an invalid configuration section.
// It is only produced at load time.
type ConfigError struct {
	Section string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s config: %v", e.Section, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
