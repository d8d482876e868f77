package level

import (
	"sort"
	"sync"

	lberrors "github.com/phodge/lumberjack/internal/errors"
)

// Level is a severity: a unique name bound to an integer rank. All levels
// registered in one Registry share a single total order, so any two of
// them are comparable.
type Level struct {
	name string
	rank int
}

// Name returns the severity name, e.g. "INFO".
func (l Level) Name() string { return l.name }

// Rank returns the severity's position in the total order.
func (l Level) Rank() int { return l.rank }

// String returns the severity name.
func (l Level) String() string { return l.name }

// IsZero reports whether l is the zero Level (never a registered one).
func (l Level) IsZero() bool { return l.name == "" }

// Standard severities use the classic rank spacing; semantic severities
// are interleaved between INFO and WARNING (plus OUTAGE above ERROR) so
// that script-facing levels sort where their urgency belongs.
var (
	Debug    = Level{"DEBUG", 10}
	Remark   = Level{"REMARK", 15}
	Info     = Level{"INFO", 20}
	Winning  = Level{"WINNING", 26}
	Unknown  = Level{"UNKNOWN", 27}
	Losing   = Level{"LOSING", 28}
	Heading  = Level{"HEADING", 29}
	Warning  = Level{"WARNING", 30}
	Error    = Level{"ERROR", 40}
	Outage   = Level{"OUTAGE", 45}
	Critical = Level{"CRITICAL", 50}
)

// Registry is the single source of truth for severity names and ranks.
// It is mutable during a build phase and must be frozen before the first
// scope is created; a frozen registry is safe for concurrent reads.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Level
	byRank map[int]Level
	frozen bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Level),
		byRank: make(map[int]Level),
	}
}

// Standard returns a registry pre-populated with the standard and
// semantic severities. Custom levels may still be registered until the
// registry is frozen.
func Standard() *Registry {
	r := NewRegistry()
	for _, l := range []Level{
		Debug, Remark, Info, Winning, Unknown, Losing,
		Heading, Warning, Error, Outage, Critical,
	} {
		r.byName[l.name] = l
		r.byRank[l.rank] = l
	}
	return r
}

// Register binds name to rank. It fails with a RegistrationError if the
// name is already registered, the rank is already bound to a different
// name, or the registry has been frozen.
func (r *Registry) Register(name string, rank int) (Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return Level{}, lberrors.Registrationf("cannot register level %q: registry is frozen", name)
	}
	if name == "" {
		return Level{}, lberrors.Registrationf("level name must not be empty")
	}
	if _, exists := r.byName[name]; exists {
		return Level{}, lberrors.Registrationf("level name %q is already registered", name)
	}
	if bound, exists := r.byRank[rank]; exists {
		return Level{}, lberrors.Registrationf("rank %d is already bound to level %q", rank, bound.name)
	}

	l := Level{name: name, rank: rank}
	r.byName[name] = l
	r.byRank[rank] = l
	return l, nil
}

// Get returns the level registered under name, or an UnknownLevelError.
func (r *Registry) Get(name string) (Level, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byName[name]
	if !ok {
		return Level{}, &lberrors.UnknownLevelError{Name: name}
	}
	return l, nil
}

// ByRank returns the level bound to rank, or an UnknownLevelError.
func (r *Registry) ByRank(rank int) (Level, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byRank[rank]
	if !ok {
		return Level{}, &lberrors.UnknownLevelError{Rank: rank}
	}
	return l, nil
}

// Known reports whether l is registered here with the same name and rank.
func (r *Registry) Known(l Level) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bound, ok := r.byRank[l.rank]
	return ok && bound.name == l.name
}

// Compare returns a negative number, zero, or a positive number when a is
// less severe than, equal to, or more severe than b.
func (r *Registry) Compare(a, b Level) int {
	return a.rank - b.rank
}

// Freeze makes the registry immutable. Registration attempts after Freeze
// fail; reads need no synchronization beyond the registry's own.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Levels returns all registered levels in ascending rank order.
func (r *Registry) Levels() []Level {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Level, 0, len(r.byRank))
	for _, l := range r.byRank {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].rank < out[j].rank })
	return out
}
