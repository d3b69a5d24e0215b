// main is the entry point of the users table editor.
//
// STARTUP SEQUENCE (both modes):
//  1. Load configuration (.env, optional YAML file, environment)
//  2. Initialise the logger
//  3. Open the in-memory Record Store and seed it
//  4. Build the editor (store + modal + user form)
//  5. Run the chosen renderer: terminal UI or HTTP page
//
// RUNNING:
//
//	go run ./cmd/users-table                 # terminal UI
//	go run ./cmd/users-table serve           # HTTP page on http_server.address
//	go run ./cmd/users-table serve --config=config/local.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aanand-mishra/users-table/internal/config"
	"github.com/aanand-mishra/users-table/internal/editor"
	"github.com/aanand-mishra/users-table/internal/form"
	"github.com/aanand-mishra/users-table/internal/http/handlers/user"
	"github.com/aanand-mishra/users-table/internal/storage"
	"github.com/aanand-mishra/users-table/internal/storage/memory"
	"github.com/aanand-mishra/users-table/internal/storage/sqlite"
	"github.com/aanand-mishra/users-table/internal/tui"
	"github.com/aanand-mishra/users-table/internal/types"
)

var version = "1.0.0"

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "users-table",
	Short: "Form-driven user table editor",
	Long: `users-table keeps a list of users in memory and edits it through a
modal form with inline validation.

Run without a subcommand to start the terminal UI, or "serve" to edit the
same table from a browser. Nothing is written to disk: the table resets
every time the program starts.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the table in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the table editor over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the configuration YAML file (or CONFIG_PATH)")
	rootCmd.AddCommand(tuiCmd, serveCmd)
}

func runTUI() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The terminal owns stdout, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := setupLogger(cfg.Env, out)
	slog.SetDefault(log)

	ed, closeStore, err := newEditor(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m, err := tui.New(ed)
	if err != nil {
		return err
	}

	// Pass a pointer since Update uses a pointer receiver.
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func runServe() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	log := setupLogger(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	log.Info("starting users-table",
		slog.String("env", cfg.Env),
		slog.String("version", version),
	)

	ed, closeStore, err := newEditor(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	router := http.NewServeMux()
	user.Register(router, ed)

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	}

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}

// newEditor opens the configured store and wraps it in an editor. The
// returned func closes the store.
func newEditor(cfg *config.Config, log *slog.Logger) (*editor.Editor, func(), error) {
	var seed []types.User
	if !cfg.SkipSeed {
		seed = storage.Seed
	}

	var store storage.Storage
	switch cfg.Storage {
	case config.StorageSQLite:
		s, err := sqlite.New(cfg.StorageName, seed)
		if err != nil {
			return nil, nil, fmt.Errorf("initialise storage: %w", err)
		}
		store = s
	default:
		store = memory.New(seed)
	}

	log.Info("storage initialised",
		slog.String("storage", cfg.Storage),
		slog.Int("seeded", len(seed)))

	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}
	return editor.New(store, form.NewUserForm(), log), closeStore, nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging: JSON output at DEBUG level.
// Production (prod): JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
