package errors

import "fmt"

// UsageError indicates programmer misuse of the logging surface: emitting
// through a handle that is not on top of the stack, exiting a scope twice,
// naming an unregistered style, or registering levels after the first
// scope was created.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Reason
}

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) error {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError indicates invalid startup configuration, such as an
// execution context with no entry in the verbosity default table. It is
// fatal: the process cannot build a stack from a broken table.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// Configf builds a ConfigurationError from a format string.
func Configf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// RegistrationError indicates a severity could not be registered: the name
// or rank is already bound, or the registry has been frozen. Registration
// failures are a species of programmer misuse, so the error unwraps to a
// UsageError and errors.As finds either type.
type RegistrationError struct {
	Reason string
}

func (e *RegistrationError) Error() string {
	return "registration error: " + e.Reason
}

func (e *RegistrationError) Unwrap() error {
	return &UsageError{Reason: e.Reason}
}

// Registrationf builds a RegistrationError from a format string.
func Registrationf(format string, args ...any) error {
	return &RegistrationError{Reason: fmt.Sprintf(format, args...)}
}

// UnknownLevelError indicates a severity lookup by name or rank found
// nothing in the registry.
type UnknownLevelError struct {
	Name string
	Rank int
}

func (e *UnknownLevelError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown severity level %q", e.Name)
	}
	return fmt.Sprintf("unknown severity rank %d", e.Rank)
}
