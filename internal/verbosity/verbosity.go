package verbosity

import (
	"os"
	"strings"

	"golang.org/x/term"

	lberrors "github.com/phodge/lumberjack/internal/errors"
	"github.com/phodge/lumberjack/internal/level"
)

// ContextKind classifies how the process is being run. The classification
// decides the default display threshold before any -v flags are counted.
type ContextKind int

const (
	// Interactive means stdout is a terminal with a human watching.
	Interactive ContextKind = iota
	// CI means a continuous-integration runner is capturing output.
	CI
	// Piped means stdout is redirected to a pipe or file.
	Piped
	// Daemon means a process supervisor (e.g. systemd) owns the output.
	Daemon
)

// String returns the lowercase context name.
func (k ContextKind) String() string {
	switch k {
	case Interactive:
		return "interactive"
	case CI:
		return "ci"
	case Piped:
		return "piped"
	case Daemon:
		return "daemon"
	default:
		return "invalid"
	}
}

// ParseContext converts a context name (case-insensitive) back into a
// ContextKind. Unrecognized names fail with a ConfigurationError.
func ParseContext(s string) (ContextKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interactive":
		return Interactive, nil
	case "ci", "continuous-integration":
		return CI, nil
	case "piped", "non-interactive":
		return Piped, nil
	case "daemon", "daemon-managed":
		return Daemon, nil
	default:
		return 0, lberrors.Configf("unrecognized execution context %q", s)
	}
}

// ciEnvVars are set by the CI platforms we recognize. Most platforms also
// set the generic CI variable.
var ciEnvVars = []string{
	"CI",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"BUILDKITE",
	"CIRCLECI",
	"JENKINS_URL",
}

// Classify inspects the terminal and environment to decide how the
// process is being run. CI markers win over terminal state because some
// runners allocate a pty.
func Classify() ContextKind {
	for _, name := range ciEnvVars {
		if os.Getenv(name) != "" {
			return CI
		}
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return Interactive
	}
	// systemd sets these when it owns the process's stdio.
	if os.Getenv("INVOCATION_ID") != "" || os.Getenv("JOURNAL_STREAM") != "" {
		return Daemon
	}
	return Piped
}

// Resolver maps an execution context plus a verbosity count to the
// minimum severity rank eligible for live display at depth 0.
//
// Defaults is the per-context base threshold table; it must be total over
// the context set or Resolve fails with a ConfigurationError. Step is the
// rank distance each repeated verbosity flag removes from the base.
type Resolver struct {
	Defaults map[ContextKind]int
	Step     int
}

// DefaultResolver returns the compiled-in threshold table: interactive
// and piped runs admit UNKNOWN and above, CI and daemon runs admit
// everything down to DEBUG.
func DefaultResolver() Resolver {
	return Resolver{
		Defaults: map[ContextKind]int{
			Interactive: level.Unknown.Rank(),
			Piped:       level.Unknown.Rank(),
			CI:          level.Debug.Rank(),
			Daemon:      level.Debug.Rank(),
		},
		Step: 1,
	}
}

// Resolve returns the depth-0 display threshold for the given context and
// verbosity count. It is pure and monotonic: a larger verboseCount never
// raises the threshold.
func (r Resolver) Resolve(kind ContextKind, verboseCount int) (int, error) {
	base, ok := r.Defaults[kind]
	if !ok {
		return 0, lberrors.Configf("no default threshold configured for context %q", kind)
	}
	if verboseCount < 0 {
		verboseCount = 0
	}
	step := r.Step
	if step <= 0 {
		step = 1
	}
	return base - verboseCount*step, nil
}
