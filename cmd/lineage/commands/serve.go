package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/server"
)

// ServeCmd starts the JSON API
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Serve the analyses as a JSON API",
	Long: `Load the person table and serve the graph and every analysis as JSON
for a presentation layer. With --watch the table is reloaded whenever the
file changes; a reload that fails keeps the previous data.

Endpoints:
  GET /health
  GET /api/graph
  GET /api/generations
  GET /api/surnames
  GET /api/surnames/counts
  GET /api/missing?generation=N
  GET /api/ages
  GET /api/places/births
  GET /api/places/deaths?city=X
  GET /api/report`,
	RunE: runServe,
}

func init() {
	ServeCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides server.port)")
	ServeCmd.Flags().BoolP("watch", "w", false, "Reload the table when the file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		cfg.Server.Watch = true
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	store, err := dataset.Open(ctx, cfg)
	if err != nil {
		return err
	}
	session, err := store.Current()
	if err != nil {
		return err
	}

	if cfg.Server.Watch {
		watcher, err := dataset.NewWatcher(store, time.Duration(cfg.Server.DebounceMS)*time.Millisecond)
		if err != nil {
			return err
		}
		defer watcher.Stop()
		watcher.OnReload(func(s *dataset.Session) {
			pterm.Info.Printfln("Reloaded %s (%d persons)", s.Path, len(s.Persons()))
		})
		watcher.Start(ctx)
	}

	srv := server.New(store, cfg.Server)
	errChan, err := srv.Start()
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Serving %s (%d persons) on http://localhost:%d", session.Path, len(session.Persons()), cfg.Server.Port)
	if cfg.Server.Watch {
		pterm.Info.Println("Watching the table for changes")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err, ok := <-errChan:
		if ok && err != nil {
			return err
		}
		return nil
	case <-sigChan:
		pterm.Info.Println("\nShutting down gracefully (press Ctrl+C again to force)...")
	}

	cancel()
	shutdownDone := make(chan error, 1)
	go func() {
		shutdownDone <- srv.Stop(context.Background())
	}()

	select {
	case err := <-shutdownDone:
		if err != nil {
			return errors.Wrap(err, "shutdown error")
		}
		pterm.Success.Println("Server stopped cleanly")
		return nil
	case <-sigChan:
		fmt.Fprintln(os.Stderr, pterm.Yellow("Force shutdown - exiting immediately"))
		os.Exit(1)
		return nil
	}
}
