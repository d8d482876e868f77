package console

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/phodge/lumberjack/internal/task"
	"github.com/phodge/lumberjack/internal/ui"
	"github.com/phodge/lumberjack/internal/verbosity"
)

// Renderer turns records and summary blocks into terminal text: two
// spaces of indentation per nesting level, a colored level tag, and the
// message styled by its tag when one is set. Level tags are colored by
// looking up the lowercase severity name in the style set, so custom
// severities pick up custom colors with no renderer changes.
type Renderer struct {
	Styles *ui.StyleSet

	// Timestamps prefixes each record with [HH:MM:SS].
	Timestamps bool
}

// NewRenderer returns a renderer over the given style set.
func NewRenderer(styles *ui.StyleSet) *Renderer {
	if styles == nil {
		styles = ui.DefaultStyles()
	}
	return &Renderer{Styles: styles}
}

// Record renders one log record.
func (r *Renderer) Record(rec *task.Record, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	if r.Timestamps {
		b.WriteString(ui.Muted.Sprint(rec.Time.Format("[15:04:05]")))
		b.WriteString(" ")
	}

	tag := "[" + strings.ToLower(rec.Level.Name()) + "]"
	if f, err := r.Styles.Lookup(rec.Level.Name()); err == nil {
		tag = f.Sprint(tag)
	}
	b.WriteString(tag)
	b.WriteString(" ")

	msg := rec.Message()
	if rec.Style != "" {
		if f, err := r.Styles.Lookup(rec.Style); err == nil {
			msg = f.Sprint(msg)
		}
	}
	b.WriteString(msg)

	if len(rec.Fields) > 0 {
		b.WriteString(" ")
		b.WriteString(ui.Muted.Sprint(formatFields(rec.Fields)))
	}
	return b.String()
}

// Summary renders a scope's summary block: each entry on its own line,
// then the warning tally with a ✓ or ⚠ marker.
func (r *Renderer) Summary(block task.SummaryBlock) string {
	indent := strings.Repeat("  ", block.Depth)
	var b strings.Builder

	for _, e := range block.Entries {
		line := fmt.Sprintf("%v %s", e.Value, e.Label)
		if e.Style != "" {
			if f, err := r.Styles.Lookup(e.Style); err == nil {
				line = f.Sprint(line)
			}
		}
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if block.Warnings == 0 {
		fmt.Fprintf(&b, "%s%s no warnings in %s", indent, ui.Winning.Sprint("✓"), block.Title)
	} else {
		fmt.Fprintf(&b, "%s%s %d warning(s) in %s", indent, ui.Warning.Sprint("⚠"), block.Warnings, block.Title)
	}
	return b.String()
}

// formatFields renders the structured side-channel as space-separated
// key=value pairs in sorted key order.
func formatFields(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

// StreamWriter adapts an io.Writer into the task.Writer sink. Each call
// writes one newline-terminated line; write errors propagate unmodified.
type StreamWriter struct {
	Out io.Writer
}

// Write implements task.Writer.
func (w StreamWriter) Write(text string) error {
	_, err := io.WriteString(w.Out, ui.EnsureNewline(text))
	return err
}

// ColorCapable reports whether output for the given execution context
// should be colorized. Only interactive terminals qualify, and NO_COLOR
// and terminal capability are still respected.
func ColorCapable(kind verbosity.ContextKind) bool {
	return kind == verbosity.Interactive && !ui.ColorDisabled()
}
