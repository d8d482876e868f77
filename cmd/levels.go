package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phodge/lumberjack/internal/configs"
	"github.com/phodge/lumberjack/internal/ui"
)

// LevelsCmd prints the severity registry in rank order, including any
// custom levels from the configuration file.
var LevelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the severity registry in rank order",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		cfg, err := configs.Load(levelsConfigPath)
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

		for _, lv := range registry.Levels() {
			name := lv.Name()
			if f, err := styles.Lookup(strings.ToLower(name)); err == nil {
				name = f.Sprint(name)
			}
			fmt.Printf("%4d  %s\n", lv.Rank(), name)
		}
		fmt.Printf("\n%s\n", ui.Muted.Sprint("styles: "+strings.Join(styles.Names(), ", ")))
		return nil
	},
}

var levelsConfigPath string

func init() {
	LevelsCmd.Flags().StringVar(&levelsConfigPath, "config", configs.DefaultFileName, "path to the configuration file")
}
