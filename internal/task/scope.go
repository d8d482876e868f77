package task

import (
	"time"

	"github.com/phodge/lumberjack/internal/level"
)

// Status is a scope's position in its lifecycle. The only transitions are
// CREATED -> ACTIVE at enter and ACTIVE -> {SUCCEEDED, FAILED} at exit.
type Status int

const (
	StatusCreated Status = iota
	StatusActive
	StatusSucceeded
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "CREATED"
	case StatusActive:
		return "ACTIVE"
	case StatusSucceeded:
		return "SUCCEEDED"
	case StatusFailed:
		return "FAILED"
	default:
		return "INVALID"
	}
}

// Scope is one nested unit of work: a title, a start time, a display
// threshold, and a buffer of records that were not interesting enough to
// show yet. A scope is mutated only while it is the active scope of its
// stack; after exit it is immutable and retained for reporting only.
type Scope struct {
	stack   *Stack
	id      int
	parent  *Scope
	depth   int
	title   string
	started time.Time

	// threshold is the minimum rank displayed live in this scope:
	// resolve(context, verbosity) + depth*escalationStep.
	threshold int

	status  Status
	buffer  []*Record
	opening *Record

	summaries      []SummaryEntry
	ownWarnings    int
	inheritedWarns int

	showCompletion bool
}

// ID returns the scope's identifier, unique within its stack.
func (sc *Scope) ID() int { return sc.id }

// Parent returns the enclosing scope, or nil for a root scope.
func (sc *Scope) Parent() *Scope { return sc.parent }

// Depth returns the scope's nesting depth; a root scope has depth 0.
func (sc *Scope) Depth() int { return sc.depth }

// Title returns the scope's rendered title.
func (sc *Scope) Title() string { return sc.title }

// Status returns the scope's lifecycle status.
func (sc *Scope) Status() Status { return sc.status }

// Threshold returns the scope's effective display threshold rank.
func (sc *Scope) Threshold() int { return sc.threshold }

// Warnings returns the number of records at WARNING rank or above emitted
// into this scope or any of its descendants so far.
func (sc *Scope) Warnings() int { return sc.ownWarnings + sc.inheritedWarns }

// ShowCompletion controls whether a "<title> finished" line is emitted
// (through the normal display filter) when the scope exits successfully.
func (sc *Scope) ShowCompletion(show bool) { sc.showCompletion = show }

// Log emits a fully specified record into this scope. The scope must be
// the active scope of its stack; emitting through a stale handle is a
// UsageError, never a silent redirect.
func (sc *Scope) Log(rec Record) error {
	return sc.stack.emit(sc, &rec)
}

// Logf emits a message at the given severity into this scope.
func (sc *Scope) Logf(lv level.Level, format string, args ...any) error {
	return sc.stack.emit(sc, &Record{Level: lv, Format: format, Args: args})
}

// Exit closes the scope. A nil cause is a success: the buffer is
// discarded and an optional completion line goes through the normal
// display filter. A non-nil cause is a failure: the scope's buffer and
// every open ancestor's buffer are force-displayed before Exit returns,
// and an ERROR record for the failure itself is emitted.
func (sc *Scope) Exit(cause error) error {
	return sc.stack.exit(sc, cause)
}

// Convenience emitters in the usual severity spread.

// Debugf emits at DEBUG.
func (sc *Scope) Debugf(format string, args ...any) error {
	return sc.Logf(level.Debug, format, args...)
}

// Infof emits at INFO.
func (sc *Scope) Infof(format string, args ...any) error {
	return sc.Logf(level.Info, format, args...)
}

// Warnf emits at WARNING.
func (sc *Scope) Warnf(format string, args ...any) error {
	return sc.Logf(level.Warning, format, args...)
}

// Errorf emits at ERROR.
func (sc *Scope) Errorf(format string, args ...any) error {
	return sc.Logf(level.Error, format, args...)
}

// Headingf emits at HEADING.
func (sc *Scope) Headingf(format string, args ...any) error {
	return sc.Logf(level.Heading, format, args...)
}

// Winningf emits at WINNING.
func (sc *Scope) Winningf(format string, args ...any) error {
	return sc.Logf(level.Winning, format, args...)
}

// Losingf emits at LOSING.
func (sc *Scope) Losingf(format string, args ...any) error {
	return sc.Logf(level.Losing, format, args...)
}
