// Package verbosity resolves display thresholds from execution context.
//
// A threshold is the minimum severity rank shown live at nesting depth 0.
// It is derived from two inputs: the execution context (interactive
// terminal, CI runner, piped output, daemon-managed) and the number of
// repeated verbosity flags the user passed. Each flag lowers the
// threshold by a configurable step, admitting progressively less severe
// messages.
//
// Classification is best-effort environment sniffing; the resolved
// threshold itself is a pure function of its inputs, so callers can
// override the context (e.g. a --ci flag) and get deterministic results.
package verbosity
