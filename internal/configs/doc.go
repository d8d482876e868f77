// Package configs loads the optional .lumberjack.toml project file.
//
// The file can override the verbosity default table, the verbosity step,
// the escalation step, and register custom severity levels and display
// styles. Everything is optional; a missing file yields the compiled-in
// defaults.
//
// # File Format
//
//	[verbosity]
//	step = 1
//	escalation_step = 1
//
//	[verbosity.defaults]
//	interactive = "UNKNOWN"
//	piped = "INFO"
//
//	[[levels]]
//	name = "AUDIT"
//	rank = 35
//
//	[[styles]]
//	name = "audit"
//	color = "hi-blue"
//	bold = true
//
// Validation is strict: a context or level name the registry doesn't know
// is a ConfigurationError at startup, never a silent fallback.
package configs
