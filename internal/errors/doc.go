// Package errors provides typed error values for the lumberjack core.
//
// Using concrete error types allows callers to handle specific failure
// categories programmatically with errors.As() rather than string
// matching. This makes error handling more robust and refactoring-safe.
//
// # Error Categories
//
//   - UsageError: programmer misuse of the logging surface (stale scope
//     handles, double exits, unregistered style names).
//   - ConfigurationError: broken startup configuration, such as a
//     verbosity default table that does not cover an execution context.
//   - RegistrationError: duplicate or post-freeze severity registration;
//     unwraps to a UsageError since both are programmer misuse.
//   - UnknownLevelError: a severity name or rank absent from the registry.
//
// # Usage
//
// Return errors from internal packages:
//
//	if style == "" {
//	    return lberrors.Usagef("style name must not be empty")
//	}
//
// Handle errors in the CLI layer:
//
//	var usage *lberrors.UsageError
//	if errors.As(err, &usage) {
//	    // Report programmer misuse distinctly from runtime failures.
//	}
//
// Writer failures are deliberately not wrapped here: a broken output
// stream propagates to the caller exactly as the writer returned it.
package errors
