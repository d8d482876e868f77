package ui

import (
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"

	lberrors "github.com/phodge/lumberjack/internal/errors"
)

func TestDefaultStyles_SeverityNamesRegistered(t *testing.T) {
	styles := DefaultStyles()
	for _, name := range []string{
		"debug", "remark", "info", "winning", "unknown", "losing",
		"heading", "warning", "error", "outage", "critical",
	} {
		if _, err := styles.Lookup(name); err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
		}
	}
}

func TestStyleSet_LookupIsCaseInsensitive(t *testing.T) {
	styles := DefaultStyles()
	if _, err := styles.Lookup("LOSING"); err != nil {
		t.Errorf("Lookup(\"LOSING\") failed: %v", err)
	}
}

func TestStyleSet_UnknownStyleIsUsageError(t *testing.T) {
	styles := DefaultStyles()
	_, err := styles.Lookup("sparkly")
	var usage *lberrors.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected UsageError for unknown style, got %v", err)
	}
}

func TestStyleSet_RegisterAndUse(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	styles := NewStyleSet()
	f := NewFormatter(color.New(color.FgBlue), "<", ">")
	if err := styles.Register("custom", f); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	got, err := styles.Lookup("custom")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if out := got.Sprint("x"); out != "<x>" {
		t.Errorf("custom style Sprint = %q, want %q", out, "<x>")
	}
}

func TestStyleSet_DuplicateRegisterIsUsageError(t *testing.T) {
	styles := DefaultStyles()
	err := styles.Register("winning", Winning)
	var usage *lberrors.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected UsageError for duplicate style, got %v", err)
	}
}

func TestStyleSet_EmptyNameIsUsageError(t *testing.T) {
	styles := NewStyleSet()
	err := styles.Register("  ", Winning)
	var usage *lberrors.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected UsageError for empty style name, got %v", err)
	}
}
