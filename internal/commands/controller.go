// Package commands contains the CLI commands for the application
package commands

import (
	"github.com/rs/zerolog"
)

// Flags holds the global command line flags
type Flags struct {
	LogLevel   string
	ConfigPath string
}

// Controller dispatches CLI commands
type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// NewController creates a controller logging through logger
func NewController(flags *Flags, logger zerolog.Logger) *Controller {
	if flags == nil {
		flags = &Flags{}
	}
	return &Controller{Flags: flags, Logger: logger}
}
