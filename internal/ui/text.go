package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// NewFormatter builds a formatter from a color and the text decorations
// used when color output is disabled.
func NewFormatter(c *color.Color, prefix, suffix string) Formatter {
	return Formatter{color: c, prefix: prefix, suffix: suffix}
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if ColorDisabled() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if ColorDisabled() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// ColorDisabled returns true if color output should be disabled.
func ColorDisabled() bool {
	// Check NO_COLOR environment variable (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// Semantic formatters for the logger's display styles.
var (
	// Heading formats section headings.
	// Bold magenta with color, == fences == without.
	Heading = Formatter{color.New(color.FgMagenta, color.Bold), "== ", " =="}

	// Winning formats positive outcomes.
	// Green with color, unchanged without.
	Winning = Formatter{color.New(color.FgGreen), "", ""}

	// Losing formats negative outcomes that are not yet errors.
	// Red with color, unchanged without.
	Losing = Formatter{color.New(color.FgRed), "", ""}

	// Remark formats incidental asides.
	// Gray with color, (parentheses) without.
	Remark = Formatter{color.New(color.FgHiBlack), "(", ")"}

	// Error formats error indicators and messages.
	// Red with color, unchanged without.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warning indicators and messages.
	// Yellow with color, unchanged without.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats informational hints, tips, and directional indicators.
	// Cyan with color, unchanged without.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Debug formats diagnostic detail.
	// Gray with color, unchanged without.
	Debug = Formatter{color.New(color.FgHiBlack), "", ""}

	// Muted formats de-emphasized or secondary text.
	// Gray with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}

	// Highlight formats emphasized user values like file names and labels.
	// Cyan with color, 'single quotes' without.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}
)
