package main

import (
	"fmt"
	"os"

	"github.com/phodge/lumberjack/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumberjack",
	Short: "Lumberjack - a hierarchical verbosity-escalating task logger.",
	Long: `Lumberjack is a nested-scope logging engine for command-line scripts.

Messages are shown live or withheld based on nesting depth and verbosity;
when a scope fails, every withheld message in its causal chain becomes
visible in original order. Per-scope summaries and warning tallies roll up
across the whole subtree, and the process exit code follows the highest
severity observed anywhere.

Usage:
  lumberjack <command> [flags]

Available Commands:
  run        Process a CSV file under nested logging scopes (demo)
  levels     Print the severity registry

Run 'lumberjack help <command>' for more details on a specific command.
`,
	Run: func(cobraCmd *cobra.Command, args []string) {
		fmt.Println("Run 'lumberjack --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.RunCmd)
	rootCmd.AddCommand(cmd.LevelsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	os.Exit(cmd.ExitCode())
}
