package ui

import (
	"sort"
	"strings"
	"sync"

	lberrors "github.com/phodge/lumberjack/internal/errors"
)

// StyleSet maps registered style names to formatters. A style is a
// semantic display hint attached to a record or summary entry; it is
// distinct from the record's severity.
type StyleSet struct {
	mu     sync.RWMutex
	byName map[string]Formatter
}

// NewStyleSet returns an empty style set.
func NewStyleSet() *StyleSet {
	return &StyleSet{byName: make(map[string]Formatter)}
}

// DefaultStyles returns a style set with one style per built-in severity
// (keyed by its lowercase name) plus the generic "muted" and "highlight"
// styles. Severity-named styles let renderers color a level tag with a
// single lookup.
func DefaultStyles() *StyleSet {
	s := NewStyleSet()
	s.byName["debug"] = Debug
	s.byName["remark"] = Remark
	s.byName["info"] = Info
	s.byName["winning"] = Winning
	s.byName["unknown"] = Muted
	s.byName["losing"] = Losing
	s.byName["heading"] = Heading
	s.byName["warning"] = Warning
	s.byName["error"] = Error
	s.byName["outage"] = Error
	s.byName["critical"] = Error
	s.byName["muted"] = Muted
	s.byName["highlight"] = Highlight
	return s
}

// Register binds a style name to a formatter. Names are case-insensitive.
// Rebinding an existing name is a UsageError.
func (s *StyleSet) Register(name string, f Formatter) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return lberrors.Usagef("style name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[key]; exists {
		return lberrors.Usagef("style %q is already registered", key)
	}
	s.byName[key] = f
	return nil
}

// Lookup returns the formatter registered under name. An unregistered
// name is a UsageError: styles are an enumerated vocabulary, not
// free-form tags.
func (s *StyleSet) Lookup(name string) (Formatter, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.byName[key]
	if !ok {
		return Formatter{}, lberrors.Usagef("unknown style %q", name)
	}
	return f, nil
}

// Names returns all registered style names in sorted order.
func (s *StyleSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.byName))
	for name := range s.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
