package task

import (
	"fmt"
	"time"

	"github.com/phodge/lumberjack/internal/level"
)

// Record is one emitted log message. The payload fields are set once at
// emission and never mutated afterwards; buffering and replay only change
// whether and when the record is displayed.
type Record struct {
	// Time is when the record was emitted. The stack fills it from its
	// clock when left zero.
	Time time.Time

	// Level is the record's severity.
	Level level.Level

	// Format and Args are the message template and its bound parameters.
	Format string
	Args   []any

	// Style optionally names a registered display style. It is a
	// rendering hint distinct from Level.
	Style string

	// Fields is an optional structured side-channel attached to the
	// record; renderers may display or drop it.
	Fields map[string]any

	// ScopeID identifies the scope the record was emitted into.
	ScopeID int

	// shown is set once the record has been displayed, live or during a
	// flush. A shown record is never displayed again.
	shown bool
}

// Message renders the record's template with its bound parameters.
func (r *Record) Message() string {
	if len(r.Args) == 0 {
		return r.Format
	}
	return fmt.Sprintf(r.Format, r.Args...)
}

// Shown reports whether the record has been displayed.
func (r *Record) Shown() bool { return r.shown }
