package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lineage/cmd/lineage/commands"
	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lineage",
	Short: "lineage - ancestry graph and genealogy analytics",
	Long: `lineage - ancestry graph and genealogy analytics.

Reads a person table exported from a genealogy service (CSV or XLSX),
resolves repeated identities, builds the parent→child graph and reports
generation completeness, surname inheritance, missing data, ages at death
and places.

Available commands:
  tree         - Graph nodes and links for rendering
  generations  - Persons found per generation against 2^n expected
  surnames     - Weighted surname inheritance (and raw counts)
  missing      - Persons with empty or unreadable fields
  ages         - Ages at death
  places       - Birth and death places
  report       - Every analysis in one document
  serve        - JSON API for a presentation layer
  config       - Show and validate configuration

Examples:
  lineage generations --data arbol.xlsx
  lineage missing --generation 3 --format json
  lineage serve --watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			config.SetConfigFile(path)
		}

		jsonLog, _ := cmd.Flags().GetBool("json-log")
		if !jsonLog {
			if cfg, err := config.Load(); err == nil {
				jsonLog = cfg.Log.JSON
			}
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if cmd.Name() == "serve" && verbosity == 0 {
			verbosity = logger.VerbosityInfo
		}
		if err := logger.Initialize(jsonLog, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: lineage.toml searched upward, then ~/.lineage/lineage.toml)")
	rootCmd.PersistentFlags().String("data", "", "Person table to analyse, .csv or .xlsx (overrides data.path)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON to stderr")

	rootCmd.AddCommand(commands.TreeCmd)
	rootCmd.AddCommand(commands.GenerationsCmd)
	rootCmd.AddCommand(commands.SurnamesCmd)
	rootCmd.AddCommand(commands.MissingCmd)
	rootCmd.AddCommand(commands.AgesCmd)
	rootCmd.AddCommand(commands.PlacesCmd)
	rootCmd.AddCommand(commands.ReportCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
