// Package logger provides verbose logging for burrow.
// Debug, Info and Section output appears only with --verbose and goes to
// stderr so it never mixes with benchmark reports on stdout. Warnings
// are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	now               = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(gated bool, prefix, format string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(true, "[DEBUG] ", format, args)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(true, "[INFO] ", format, args)
}

// Warn prints a warning regardless of verbose mode.
func Warn(format string, args ...any) {
	write(false, "[WARN] ", format, args)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	write(true, "\n=== ", "%s ===", []any{name})
}

// Timer starts timing a step and returns a func that logs its elapsed
// time at debug level.
//
//	defer logger.Timer("populate")()
func Timer(step string) func() {
	start := now()
	return func() {
		Debug("%s took %s", step, now().Sub(start))
	}
}
