package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phodge/lumberjack/internal/configs"
	"github.com/phodge/lumberjack/internal/console"
	"github.com/phodge/lumberjack/internal/exitstatus"
	"github.com/phodge/lumberjack/internal/level"
	"github.com/phodge/lumberjack/internal/task"
	"github.com/phodge/lumberjack/internal/verbosity"
)

var (
	verboseCount int
	contextName  string
	configPath   string
	timestamps   bool
	completions  bool

	exitTracker *exitstatus.Tracker
)

// RunCmd processes a CSV file under nested logging scopes. It exists to
// exercise the whole logging surface from a real command line: counted
// verbosity flags, context overrides, buffering, cascades, and summaries.
var RunCmd = &cobra.Command{
	Use:   "run <file.csv>",
	Short: "Process a CSV file under nested logging scopes",
	Long: `Reads a CSV file and validates its rows inside nested scopes.

Each -v admits one more rank of severity at the root, and one extra -v is
needed per level of nesting. If validation fails, every withheld message
leading up to the failure is displayed regardless of verbosity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		path := args[0]

		cfg, err := configs.Load(configPath)
		if err != nil {
			return err
		}
		registry, err := cfg.BuildRegistry()
		if err != nil {
			return err
		}
		styles, err := cfg.BuildStyles()
		if err != nil {
			return err
		}
		resolver, err := cfg.BuildResolver(registry)
		if err != nil {
			return err
		}

		kind := verbosity.Classify()
		if contextName != "auto" {
			kind, err = verbosity.ParseContext(contextName)
			if err != nil {
				return err
			}
		}
		if !console.ColorCapable(kind) {
			color.NoColor = true
		}

		renderer := console.NewRenderer(styles)
		renderer.Timestamps = timestamps

		errLevel := level.Error
		if lv, err := registry.Get(level.Error.Name()); err == nil {
			errLevel = lv
		}
		exitTracker = exitstatus.NewTracker(errLevel)

		stack, err := task.New(task.Config{
			Registry:       registry,
			Styles:         styles,
			Resolver:       resolver,
			Context:        kind,
			Verbosity:      verboseCount,
			EscalationStep: cfg.Verbosity.EscalationStep,
			ShowCompletion: completions,
			Renderer:       renderer,
			Writer:         console.StreamWriter{Out: os.Stdout},
			Exit:           exitTracker,
		})
		if err != nil {
			return err
		}

		if kind == verbosity.Interactive {
			fmt.Println()
			banner := figure.NewColorFigure("lumberjack", "", "green", true)
			banner.Print()
			fmt.Println()
		}

		spinner, cleanup := startSpinner("Reading "+path, kind, verboseCount)
		rows, err := readCSV(path)
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Could not read " + color.YellowString(path)
			cleanup()
			return err
		}
		cleanup()

		// The demo ignores the processing error for its own exit: the
		// severity tracker already recorded it, and main derives the
		// process exit code from there.
		_ = processRows(stack, path, rows)
		return nil
	},
}

func init() {
	RunCmd.Flags().CountVarP(&verboseCount, "verbose", "v", "increase verbosity (repeatable)")
	RunCmd.Flags().StringVar(&contextName, "context", "auto", "execution context: auto, interactive, ci, piped, daemon")
	RunCmd.Flags().StringVar(&configPath, "config", configs.DefaultFileName, "path to the configuration file")
	RunCmd.Flags().BoolVar(&timestamps, "timestamps", false, "prefix records with [HH:MM:SS]")
	RunCmd.Flags().BoolVar(&completions, "completions", true, "show '<title> finished' lines on success")
}

// readCSV loads every row of the file. Field counts are validated later,
// per row, so a ragged file still yields rows to report on.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// processRows drives the nested-scope demo: a root scope for the file, a
// child scope for validation, summaries at the root.
func processRows(stack *task.Stack, path string, rows [][]string) error {
	// Scope titles are format templates; a path like "50%.csv" needs its
	// percent escaped.
	title := "Process csv file " + strings.ReplaceAll(path, "%", "%%")
	return stack.Do(title, func(root *task.Scope) error {
		if err := root.Headingf("%d rows loaded from %s", len(rows), path); err != nil {
			return err
		}

		if len(rows) == 0 {
			return fmt.Errorf("%s contains no rows", path)
		}
		width := len(rows[0])
		bad := 0

		err := stack.Do(fmt.Sprintf("Validate %d rows", len(rows)), func(sc *task.Scope) error {
			for i, row := range rows {
				switch {
				case len(row) != width:
					bad++
					if err := sc.Warnf("row %d: expected %d fields, got %d", i+1, width, len(row)); err != nil {
						return err
					}
				case hasEmptyField(row):
					bad++
					if err := sc.Warnf("row %d: contains empty fields", i+1); err != nil {
						return err
					}
				default:
					if err := sc.Debugf("row %d ok", i+1); err != nil {
						return err
					}
				}
			}
			if bad == len(rows) {
				return fmt.Errorf("all %d rows failed validation", bad)
			}
			if err := sc.Winningf("%d of %d rows valid", len(rows)-bad, len(rows)); err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			return err
		}

		if sErr := root.Summary(len(rows), "Rows processed"); sErr != nil {
			return sErr
		}
		if sErr := root.Summary(len(rows)-bad, "Rows processed successfully"); sErr != nil {
			return sErr
		}
		if bad > 0 {
			if sErr := root.SummaryStyled(bad, "Rows had errors", "losing"); sErr != nil {
				return sErr
			}
		}
		return nil
	})
}

func hasEmptyField(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}
	return false
}

// ExitCode returns the process exit code derived from the highest
// severity observed during the run, or 0 when no stack was built.
func ExitCode() int {
	if exitTracker == nil {
		return 0
	}
	return exitTracker.ExitCode()
}
