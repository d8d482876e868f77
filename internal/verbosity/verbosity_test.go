package verbosity

import (
	"errors"
	"testing"

	lberrors "github.com/phodge/lumberjack/internal/errors"
	"github.com/phodge/lumberjack/internal/level"
)

func TestDefaultResolver_ContextDefaults(t *testing.T) {
	r := DefaultResolver()
	tests := []struct {
		kind ContextKind
		want int
	}{
		{Interactive, level.Unknown.Rank()},
		{Piped, level.Unknown.Rank()},
		{CI, level.Debug.Rank()},
		{Daemon, level.Debug.Rank()},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.kind, 0)
		if err != nil {
			t.Fatalf("Resolve(%s, 0) failed: %v", tt.kind, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%s, 0) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestResolve_MonotonicInVerboseCount(t *testing.T) {
	r := DefaultResolver()
	for _, kind := range []ContextKind{Interactive, CI, Piped, Daemon} {
		prev, err := r.Resolve(kind, 0)
		if err != nil {
			t.Fatalf("Resolve(%s, 0) failed: %v", kind, err)
		}
		for v := 1; v <= 10; v++ {
			cur, err := r.Resolve(kind, v)
			if err != nil {
				t.Fatalf("Resolve(%s, %d) failed: %v", kind, v, err)
			}
			if cur > prev {
				t.Errorf("Resolve(%s, %d) = %d raised the threshold above %d", kind, v, cur, prev)
			}
			prev = cur
		}
	}
}

func TestResolve_StepScalesPerFlag(t *testing.T) {
	r := Resolver{
		Defaults: map[ContextKind]int{Interactive: 27},
		Step:     5,
	}
	got, err := r.Resolve(Interactive, 2)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got != 17 {
		t.Errorf("Resolve(Interactive, 2) with step 5 = %d, want 17", got)
	}
}

func TestResolve_NegativeCountClamped(t *testing.T) {
	r := DefaultResolver()
	got, err := r.Resolve(Interactive, -3)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	want, _ := r.Resolve(Interactive, 0)
	if got != want {
		t.Errorf("Resolve(Interactive, -3) = %d, want %d", got, want)
	}
}

func TestResolve_MissingContextIsConfigurationError(t *testing.T) {
	r := Resolver{Defaults: map[ContextKind]int{Interactive: 27}}
	_, err := r.Resolve(Daemon, 0)
	var cfgErr *lberrors.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for missing table entry, got %v", err)
	}
}

func TestParseContext_Names(t *testing.T) {
	tests := []struct {
		in   string
		want ContextKind
	}{
		{"interactive", Interactive},
		{"CI", CI},
		{"continuous-integration", CI},
		{"piped", Piped},
		{"non-interactive", Piped},
		{"daemon", Daemon},
		{"Daemon-Managed", Daemon},
	}
	for _, tt := range tests {
		got, err := ParseContext(tt.in)
		if err != nil {
			t.Fatalf("ParseContext(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseContext(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseContext_UnknownIsConfigurationError(t *testing.T) {
	_, err := ParseContext("mainframe")
	var cfgErr *lberrors.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestClassify_CIEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	if got := Classify(); got != CI {
		t.Errorf("Classify() with CI=true = %s, want ci", got)
	}
}
