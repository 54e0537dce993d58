package commands

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/display"
	"github.com/teranos/lineage/errors"
)

// ConfigCmd shows and validates configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and validate configuration",
	Long: `Display and check lineage configuration.

Configuration sources (in order of precedence):
1. Command line flags (--data, --port, ...)
2. Environment variables (LINEAGE_* prefix, e.g. LINEAGE_SERVER_PORT)
3. --config FILE
4. Project config (./lineage.toml, searched upward)
5. User config (~/.lineage/lineage.toml)
6. Default values

Examples:
  lineage config show                  # Show current configuration
  lineage config show --format json    # Show configuration as JSON
  lineage config get columns.id        # Get one value
  lineage config validate              # Validate current configuration`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a configuration value using dot notation (e.g. data.sentinel, server.port)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

func init() {
	configShowCmd.Flags().StringP("format", "f", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return display.OutputJSON(out, cfg)
	case "yaml":
		fmt.Fprintln(out, "# lineage configuration")
		return display.OutputYAML(out, cfg)
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# lineage configuration\n%s", string(data))
		return nil
	default:
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidRequest, "unsupported format %q", format),
			"use one of: toml, json, yaml",
		)
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v, err := config.GetViper()
	if err != nil {
		return err
	}
	if !v.IsSet(key) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "configuration key %q", key),
			"run 'lineage config show' to list the keys",
		)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), pterm.Green("✓ Configuration is valid"))
	for _, src := range config.Sources() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", src)
	}
	return nil
}
