// Package ui provides semantic text formatting for terminal output.
//
// This package defines formatters for the logger's display styles that
// render appropriately based on terminal capabilities. When colors are
// available, content is colorized. When NO_COLOR is set or the terminal
// doesn't support colors, text-based decorations (fences, quotes,
// parentheses) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Heading.Sprint("Process csv file")  // Section headings
//	ui.Winning.Sprint("97 rows ok")        // Positive outcomes
//	ui.Losing.Sprint("3 rows had errors")  // Negative outcomes
//	ui.Warning.Sprint("2 warnings")        // Warnings
//	ui.Highlight.Sprint("data.csv")        // Emphasized values
//	ui.Muted.Sprint("optional")            // De-emphasized text
//
// # Style Sets
//
// A StyleSet is the registry behind record and summary style tags. Style
// names are an enumerated vocabulary: looking up an unregistered name is
// a UsageError rather than a silent fallback, so typos surface in tests.
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
package ui
