package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/phodge/lumberjack/internal/ui"
	"github.com/phodge/lumberjack/internal/verbosity"
)

// startSpinner creates and starts a spinner while slow setup work (file
// reading) happens before any scope is open. The spinner only runs on an
// interactive terminal with no verbosity flags; everywhere else it would
// garble captured output.
// Returns the spinner and a cleanup function that stops it and prints the
// final message, if any.
func startSpinner(message string, kind verbosity.ContextKind, verboseCount int) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if kind == verbosity.Interactive && verboseCount == 0 {
		s.Start()
	}

	cleanup := func() {
		s.Stop()
		if s.FinalMSG != "" {
			fmt.Print(ui.EnsureNewline(s.FinalMSG))
		}
	}
	return s, cleanup
}
