package task

import (
	"fmt"
	"os"
	"strings"
	"time"

	lberrors "github.com/phodge/lumberjack/internal/errors"
	"github.com/phodge/lumberjack/internal/exitstatus"
	"github.com/phodge/lumberjack/internal/level"
	"github.com/phodge/lumberjack/internal/ui"
	"github.com/phodge/lumberjack/internal/verbosity"
)

// Writer receives rendered text, one call per record that becomes visible
// and one call per summary block. Write failures are never retried or
// swallowed; they propagate to the caller exactly as received.
type Writer interface {
	Write(text string) error
}

// Renderer turns records and summary blocks into text. The stack decides
// *whether* something is displayed; the renderer decides how it looks.
type Renderer interface {
	Record(rec *Record, depth int) string
	Summary(block SummaryBlock) string
}

// Config assembles a stack's collaborators. Zero values fall back to the
// standard registry, default styles, compiled-in resolver table, a plain
// renderer, and stdout.
type Config struct {
	Registry *level.Registry
	Styles   *ui.StyleSet

	Resolver  verbosity.Resolver
	Context   verbosity.ContextKind
	Verbosity int

	// EscalationStep is the rank distance added to the threshold per
	// nesting level. Zero means the resolver's verbosity step.
	EscalationStep int

	// OpeningLevel is the severity of scope opening and completion
	// records. Zero means INFO.
	OpeningLevel level.Level

	// ShowCompletion emits a "<title> finished" line on successful exits,
	// subject to the normal display filter.
	ShowCompletion bool

	Renderer Renderer
	Writer   Writer

	// Exit is the process-wide severity tracker. Supply a shared one when
	// running several stacks; nil creates a private tracker with the
	// ERROR threshold.
	Exit *exitstatus.Tracker

	// Clock supplies record timestamps; nil means time.Now.
	Clock func() time.Time
}

// Stack manages one tree of nested scopes: live display decisions,
// buffering, and the forced flush cascade on failure. A stack belongs to
// a single logical thread of control; concurrent workers each need their
// own stack (sharing the registry and exit tracker is fine).
type Stack struct {
	registry *level.Registry
	styles   *ui.StyleSet

	base int
	step int

	openingLevel   level.Level
	showCompletion bool
	warnRank       int

	renderer Renderer
	writer   Writer
	exitTrk  *exitstatus.Tracker
	clock    func() time.Time

	open   []*Scope
	nextID int
}

// New builds a stack, resolving the depth-0 threshold for the configured
// context and verbosity. An unrecognized context or incomplete default
// table surfaces as a ConfigurationError. Building a stack freezes the
// registry: severity registration is a startup-time activity.
func New(cfg Config) (*Stack, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = level.Standard()
	}
	styles := cfg.Styles
	if styles == nil {
		styles = ui.DefaultStyles()
	}

	resolver := cfg.Resolver
	if resolver.Defaults == nil {
		resolver = verbosity.DefaultResolver()
	}
	base, err := resolver.Resolve(cfg.Context, cfg.Verbosity)
	if err != nil {
		return nil, err
	}

	step := cfg.EscalationStep
	if step <= 0 {
		step = resolver.Step
	}
	if step <= 0 {
		step = 1
	}

	openingLevel := cfg.OpeningLevel
	if openingLevel.IsZero() {
		openingLevel = level.Info
	}

	warnRank := level.Warning.Rank()
	if lv, err := registry.Get(level.Warning.Name()); err == nil {
		warnRank = lv.Rank()
	}

	exitTrk := cfg.Exit
	if exitTrk == nil {
		errLevel := level.Error
		if lv, err := registry.Get(level.Error.Name()); err == nil {
			errLevel = lv
		}
		exitTrk = exitstatus.NewTracker(errLevel)
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = plainRenderer{}
	}
	writer := cfg.Writer
	if writer == nil {
		writer = stdoutWriter{}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	registry.Freeze()

	return &Stack{
		registry:       registry,
		styles:         styles,
		base:           base,
		step:           step,
		openingLevel:   openingLevel,
		showCompletion: cfg.ShowCompletion,
		warnRank:       warnRank,
		renderer:       renderer,
		writer:         writer,
		exitTrk:        exitTrk,
		clock:          clock,
	}, nil
}

// Registry returns the (frozen) severity registry the stack classifies with.
func (s *Stack) Registry() *level.Registry { return s.registry }

// ExitTracker returns the process-wide severity tracker the stack reports to.
func (s *Stack) ExitTracker() *exitstatus.Tracker { return s.exitTrk }

// Active returns the current top-of-stack scope, or nil when no scope is
// open.
func (s *Stack) Active() *Scope {
	if len(s.open) == 0 {
		return nil
	}
	return s.open[len(s.open)-1]
}

// Depth returns the number of currently open scopes.
func (s *Stack) Depth() int { return len(s.open) }

// Enter opens a new scope as a child of the active scope (or a new root),
// and emits its opening record at the stack's opening severity through
// the same filter as any other record: the banner itself is buffered when
// the threshold is not met.
func (s *Stack) Enter(title string, args ...any) (*Scope, error) {
	return s.EnterAt(s.openingLevel, title, args...)
}

// EnterAt is Enter with a caller-supplied severity for the opening record.
// The title is a format template: unconsumed or mismatched verbs fail with
// a UsageError even when no arguments are supplied, so a literal percent
// must be written %%.
func (s *Stack) EnterAt(lv level.Level, title string, args ...any) (*Scope, error) {
	rendered := title
	if len(args) > 0 || strings.ContainsRune(title, '%') {
		rendered = fmt.Sprintf(title, args...)
		if strings.Contains(rendered, "%!") {
			return nil, lberrors.Usagef("malformed scope title template %q", title)
		}
	}

	depth := len(s.open)
	sc := &Scope{
		stack:          s,
		id:             s.nextID,
		parent:         s.Active(),
		depth:          depth,
		title:          rendered,
		started:        s.clock(),
		threshold:      s.base + depth*s.step,
		status:         StatusActive,
		showCompletion: s.showCompletion,
	}
	s.nextID++
	s.open = append(s.open, sc)

	opening := &Record{Level: lv, Format: rendered, ScopeID: sc.id}
	sc.opening = opening
	if err := s.emit(sc, opening); err != nil {
		return sc, err
	}
	return sc, nil
}

// Do runs fn inside a new scope and guarantees the exit side effects on
// every departure path: an error return exits the scope as a failure, a
// panic triggers the same forced flush before re-panicking, and a normal
// return exits as a success. The original failure is never wrapped or
// altered.
func (s *Stack) Do(title string, fn func(*Scope) error) error {
	sc, err := s.Enter(title)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = s.exit(sc, fmt.Errorf("panic: %v", r))
			panic(r)
		}
	}()

	if err := fn(sc); err != nil {
		if exitErr := s.exit(sc, err); exitErr != nil {
			return exitErr
		}
		return err
	}
	return s.exit(sc, nil)
}

// emit is the single entry point for records. Every record is classified,
// observed by the exit tracker, and counted, regardless of whether it is
// displayed now or buffered.
func (s *Stack) emit(sc *Scope, rec *Record) error {
	if sc.status != StatusActive {
		return lberrors.Usagef("cannot log to scope %q: status is %s", sc.title, sc.status)
	}
	if s.Active() != sc {
		return lberrors.Usagef("cannot log to scope %q: it is not the active scope", sc.title)
	}
	if !s.registry.Known(rec.Level) {
		return &lberrors.UnknownLevelError{Name: rec.Level.Name(), Rank: rec.Level.Rank()}
	}
	if rec.Style != "" {
		if _, err := s.styles.Lookup(rec.Style); err != nil {
			return err
		}
	}
	if rec.Time.IsZero() {
		rec.Time = s.clock()
	}
	rec.ScopeID = sc.id

	s.exitTrk.Observe(rec.Level)
	s.countWarning(sc, rec)

	if rec.Level.Rank() >= sc.threshold {
		if err := s.revealOpenings(rec); err != nil {
			return err
		}
		return s.display(rec, sc.depth)
	}
	sc.buffer = append(sc.buffer, rec)
	return nil
}

// countWarning bumps the warning/error tallies for records at WARNING
// rank or above: the owning scope's own counter plus every open
// ancestor's inherited counter, so a parent's summary reflects its whole
// subtree.
func (s *Stack) countWarning(sc *Scope, rec *Record) {
	if rec.Level.Rank() < s.warnRank {
		return
	}
	sc.ownWarnings++
	for p := sc.parent; p != nil; p = p.parent {
		p.inheritedWarns++
	}
}

// revealOpenings displays any withheld opening records of open scopes,
// root first, so the context surrounding a suddenly-visible message stays
// legible. The record about to be displayed is skipped; it is rendered by
// the caller at its own position.
func (s *Stack) revealOpenings(about *Record) error {
	for _, sc := range s.open {
		op := sc.opening
		if op == nil || op.shown || op == about {
			continue
		}
		if err := s.display(op, sc.depth); err != nil {
			return err
		}
	}
	return nil
}

// display renders and writes one record, marking it shown. Writer
// failures propagate unmodified.
func (s *Stack) display(rec *Record, depth int) error {
	rec.shown = true
	return s.writer.Write(s.renderer.Record(rec, depth))
}

// exit closes sc with the given cause. See Scope.Exit for semantics.
func (s *Stack) exit(sc *Scope, cause error) error {
	if sc.status != StatusActive {
		return lberrors.Usagef("cannot exit scope %q: status is already %s", sc.title, sc.status)
	}
	if s.Active() != sc {
		return lberrors.Usagef("cannot exit scope %q: it is not the active scope", sc.title)
	}

	elapsed := s.clock().Sub(sc.started)

	// Pop first: s.open now holds exactly the still-open ancestors, and a
	// repeated exit on this handle fails the status check above.
	s.open = s.open[:len(s.open)-1]

	if cause == nil {
		sc.status = StatusSucceeded
		if err := s.exitSuccess(sc, elapsed); err != nil {
			return err
		}
	} else {
		sc.status = StatusFailed
		if err := s.exitFailure(sc, elapsed, cause); err != nil {
			return err
		}
	}

	return s.renderSummary(sc)
}

// exitSuccess emits the optional completion line through the normal
// display filter and discards the scope's buffer: messages that were
// never interesting enough to show stay hidden.
func (s *Stack) exitSuccess(sc *Scope, elapsed time.Duration) error {
	if !sc.showCompletion {
		return nil
	}
	rec := &Record{
		Time:    s.clock(),
		Level:   s.openingLevel,
		Format:  "%s finished (%s)",
		Args:    []any{sc.title, elapsed.Round(time.Millisecond)},
		ScopeID: sc.id,
	}
	s.exitTrk.Observe(rec.Level)
	if rec.Level.Rank() < sc.threshold {
		return nil
	}
	if err := s.revealOpenings(rec); err != nil {
		return err
	}
	return s.display(rec, sc.depth)
}

// exitFailure force-displays the scope's buffer in original order, emits
// an ERROR record for the failure itself, and cascades the forced flush
// through every still-open ancestor from the immediate parent outward to
// the root. Thresholds cannot suppress any of it: a failure means the
// full causal chain of what led here must be visible.
func (s *Stack) exitFailure(sc *Scope, elapsed time.Duration, cause error) error {
	failure := &Record{
		Time:    s.clock(),
		Level:   level.Error,
		Format:  "%s failed (%s): %v",
		Args:    []any{sc.title, elapsed.Round(time.Millisecond), cause},
		ScopeID: sc.id,
	}
	s.exitTrk.Observe(failure.Level)
	s.countWarning(sc, failure)

	if err := s.flushForced(sc); err != nil {
		return err
	}
	if err := s.display(failure, sc.depth); err != nil {
		return err
	}
	for i := len(s.open) - 1; i >= 0; i-- {
		if err := s.flushForced(s.open[i]); err != nil {
			return err
		}
	}
	return nil
}

// flushForced displays every not-yet-shown record in the scope's buffer,
// preserving emission order and record metadata, then empties the buffer
// so a later cascade cannot replay it.
func (s *Stack) flushForced(sc *Scope) error {
	for _, rec := range sc.buffer {
		if rec.shown {
			continue
		}
		if err := s.display(rec, sc.depth); err != nil {
			return err
		}
	}
	sc.buffer = nil
	return nil
}

// plainRenderer is the fallback renderer: indentation, a lowercase level
// tag, and the message. The console package provides the colored one.
type plainRenderer struct{}

func (plainRenderer) Record(rec *Record, depth int) string {
	return strings.Repeat("  ", depth) + "[" + strings.ToLower(rec.Level.Name()) + "] " + rec.Message()
}

func (plainRenderer) Summary(block SummaryBlock) string {
	indent := strings.Repeat("  ", block.Depth)
	var b strings.Builder
	for _, e := range block.Entries {
		fmt.Fprintf(&b, "%s%v %s\n", indent, e.Value, e.Label)
	}
	fmt.Fprintf(&b, "%s%d warning(s) in %s", indent, block.Warnings, block.Title)
	return b.String()
}

// stdoutWriter is the fallback writer.
type stdoutWriter struct{}

func (stdoutWriter) Write(text string) error {
	_, err := fmt.Fprintln(os.Stdout, text)
	return err
}
