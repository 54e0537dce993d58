// Package commands holds the lineage CLI commands
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/display"
	"github.com/teranos/lineage/errors"
)

// addFormatFlag registers --format on an analysis command
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(display.FormatTable), "Output format: table, json, yaml")
}

func outputFormat(cmd *cobra.Command) (display.Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	return display.ParseFormat(raw)
}

// loadConfig resolves configuration and applies the --data override
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if path, _ := cmd.Flags().GetString("data"); path != "" {
		cfg.Data.Path = path
	}
	if cfg.Data.Path == "" {
		return nil, errors.WithHint(
			errors.New("no person table given"),
			"pass --data FILE or set data.path in lineage.toml",
		)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the configured table once
func openSession(cmd *cobra.Command) (*dataset.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	store, err := dataset.Open(commandContext(cmd), cfg)
	if err != nil {
		return nil, err
	}
	return store.Current()
}

// render loads the session, computes v from it and prints it in the
// requested format
func render[T any](cmd *cobra.Command, compute func(*dataset.Session) (T, error), table func(w io.Writer, v T) error) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	v, err := compute(session)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return display.Render(out, format, v, func(w io.Writer) error { return table(w, v) })
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
