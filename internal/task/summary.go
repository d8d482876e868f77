package task

import lberrors "github.com/phodge/lumberjack/internal/errors"

// SummaryEntry is one explicit numeric result attached to a scope.
// Attaching a summary is a deliberate decision to surface a value, so
// entries are never buffered or suppressed: they render unconditionally
// when the scope exits, in the order they were added.
type SummaryEntry struct {
	Value any
	Label string
	Style string
}

// SummaryBlock is everything a renderer needs to print a scope's summary:
// the explicit entries plus the automatic warning/error tally for the
// scope's whole subtree.
type SummaryBlock struct {
	Title    string
	Depth    int
	Entries  []SummaryEntry
	Warnings int
}

// Summary appends an unstyled summary entry to the scope.
func (sc *Scope) Summary(value any, label string) error {
	return sc.addSummary(SummaryEntry{Value: value, Label: label})
}

// SummaryStyled appends a summary entry rendered with the named style.
// The style must be registered; an unknown name is a UsageError.
func (sc *Scope) SummaryStyled(value any, label, style string) error {
	return sc.addSummary(SummaryEntry{Value: value, Label: label, Style: style})
}

func (sc *Scope) addSummary(entry SummaryEntry) error {
	s := sc.stack
	if sc.status != StatusActive {
		return lberrors.Usagef("cannot add summary to scope %q: status is %s", sc.title, sc.status)
	}
	if s.Active() != sc {
		return lberrors.Usagef("cannot add summary to scope %q: it is not the active scope", sc.title)
	}
	if entry.Style != "" {
		if _, err := s.styles.Lookup(entry.Style); err != nil {
			return err
		}
	}
	sc.summaries = append(sc.summaries, entry)
	return nil
}

// renderSummary writes the scope's summary block, one Write call per
// block. Scopes with no entries and a clean warning tally stay silent.
func (s *Stack) renderSummary(sc *Scope) error {
	if len(sc.summaries) == 0 && sc.Warnings() == 0 {
		return nil
	}
	block := SummaryBlock{
		Title:    sc.title,
		Depth:    sc.depth,
		Entries:  sc.summaries,
		Warnings: sc.Warnings(),
	}
	return s.writer.Write(s.renderer.Summary(block))
}
