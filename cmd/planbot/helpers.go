package main

import (
	"fmt"
	"os"

	"github.com/Ilya-36/planbot/config"
	"github.com/Ilya-36/planbot/engine"
	"github.com/Ilya-36/planbot/logging"
)

// fatal prints an error message and exits with status 1.
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the structured logger from the loaded config.
func newLogger(cfg *config.Config) *logging.DialogLogger {
	return logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, false)
}

// newEngine wires a fresh engine with in-memory stores and the given logger.
func newEngine(logger logging.Logger) *engine.Engine {
	return engine.New(func(o *engine.Options) { o.Logger = logger })
}
