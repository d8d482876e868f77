package console

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/phodge/lumberjack/internal/level"
	"github.com/phodge/lumberjack/internal/task"
	"github.com/phodge/lumberjack/internal/ui"
	"github.com/phodge/lumberjack/internal/verbosity"
)

func TestRenderer_RecordIndentationAndTag(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := NewRenderer(ui.DefaultStyles())
	rec := &task.Record{
		Level:  level.Warning,
		Format: "row %d looks wrong",
		Args:   []any{12},
	}

	got := r.Record(rec, 2)
	if !strings.HasPrefix(got, "    ") {
		t.Errorf("depth-2 record should be indented four spaces, got %q", got)
	}
	if !strings.Contains(got, "[warning]") {
		t.Errorf("record missing level tag: %q", got)
	}
	if !strings.Contains(got, "row 12 looks wrong") {
		t.Errorf("record missing message: %q", got)
	}
}

func TestRenderer_RecordTimestamps(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := NewRenderer(ui.DefaultStyles())
	r.Timestamps = true
	rec := &task.Record{
		Time:   time.Date(2024, 6, 1, 9, 30, 45, 0, time.UTC),
		Level:  level.Info,
		Format: "hello",
	}

	got := r.Record(rec, 0)
	if !strings.Contains(got, "[09:30:45]") {
		t.Errorf("record missing timestamp prefix: %q", got)
	}
}

func TestRenderer_RecordFields(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := NewRenderer(ui.DefaultStyles())
	rec := &task.Record{
		Level:  level.Info,
		Format: "loaded",
		Fields: map[string]any{"rows": 100, "file": "data.csv"},
	}

	got := r.Record(rec, 0)
	// Sorted key order keeps output deterministic.
	if !strings.Contains(got, "file=data.csv rows=100") {
		t.Errorf("record missing sorted fields: %q", got)
	}
}

func TestRenderer_SummaryBlock(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := NewRenderer(ui.DefaultStyles())
	block := task.SummaryBlock{
		Title: "Process csv file data.csv",
		Entries: []task.SummaryEntry{
			{Value: 100, Label: "Rows processed"},
			{Value: 97, Label: "Rows processed successfully"},
			{Value: 3, Label: "Rows had errors", Style: "losing"},
		},
		Warnings: 3,
	}

	got := r.Summary(block)
	for _, want := range []string{
		"100 Rows processed",
		"97 Rows processed successfully",
		"3 Rows had errors",
		"3 warning(s) in Process csv file data.csv",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestRenderer_SummaryCleanScope(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := NewRenderer(ui.DefaultStyles())
	got := r.Summary(task.SummaryBlock{
		Title:   "tidy job",
		Entries: []task.SummaryEntry{{Value: 5, Label: "Things done"}},
	})
	if !strings.Contains(got, "no warnings in tidy job") {
		t.Errorf("clean scope should report no warnings, got:\n%s", got)
	}
}

func TestStreamWriter_AppendsNewlineOnce(t *testing.T) {
	var sb strings.Builder
	w := StreamWriter{Out: &sb}
	if err := w.Write("line one"); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Write("line two\n"); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if sb.String() != "line one\nline two\n" {
		t.Errorf("stream content = %q", sb.String())
	}
}

type brokenStream struct {
	err error
}

func (b brokenStream) Write(p []byte) (int, error) {
	return 0, b.err
}

func TestStreamWriter_ErrorPropagates(t *testing.T) {
	sentinel := errors.New("broken pipe")
	w := StreamWriter{Out: brokenStream{err: sentinel}}
	if err := w.Write("anything"); !errors.Is(err, sentinel) {
		t.Fatalf("expected the stream's own error, got %v", err)
	}
}

func TestColorCapable_OnlyInteractive(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	for _, kind := range []verbosity.ContextKind{verbosity.CI, verbosity.Piped, verbosity.Daemon} {
		if ColorCapable(kind) {
			t.Errorf("ColorCapable(%s) = true, want false", kind)
		}
	}
	// Interactive still defers to NO_COLOR.
	if ColorCapable(verbosity.Interactive) {
		t.Errorf("ColorCapable(interactive) with NO_COLOR set = true, want false")
	}
}
