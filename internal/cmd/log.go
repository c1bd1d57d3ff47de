// Package cmd implements the non-TUI jsonlens subcommands: reading,
// setting and patching values in a document from scripts.
package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the command logger. Verbose enables debug-level output;
// otherwise only warnings and errors are shown.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
