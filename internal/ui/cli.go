package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roomboard/internal/api"
	"roomboard/internal/config"
	"roomboard/internal/store"
	"roomboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	logger  *zap.Logger
	client  *api.Client
	cache   *store.SQLite
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "roomboard",
		Short: "A meeting-room availability dashboard",
		Long: `Roomboard shows a week of meeting-room availability at a glance.

It reads the room directory, working hours and meetings from the booking
backend, renders a Sunday-through-Saturday grid, and lets you request
meetings, cancel them, and edit room working hours.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.api(), a.snapshots(), a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.roomsCmd())
	a.root.AddCommand(a.gridCmd())
	a.root.AddCommand(a.meetingsCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.bookCmd())
	a.root.AddCommand(a.cancelCmd())
	a.root.AddCommand(a.hoursCmd())
	a.root.AddCommand(a.refreshCmd())

	return a
}

// api returns the backend client, creating it on first use.
func (a *App) api() *api.Client {
	if a.client == nil {
		a.client = api.New(a.config.API.BaseURL, a.config.API.Token, a.log())
	}
	return a.client
}

// log returns the application logger. Quiet unless --debug is set; the
// backend client logs every request through it.
func (a *App) log() *zap.Logger {
	if a.logger == nil {
		if a.debug {
			logger, err := zap.NewDevelopment()
			if err == nil {
				a.logger = logger
				return a.logger
			}
		}
		a.logger = zap.NewNop()
	}
	return a.logger
}

// snapshots returns the local snapshot store, or nil when it cannot be
// opened. The dashboard degrades to live-only mode without it.
func (a *App) snapshots() *store.SQLite {
	if a.cache == nil {
		s, err := store.New(a.config.Storage.DBPath)
		if err != nil {
			a.log().Warn("snapshot store unavailable", zap.Error(err))
			return nil
		}
		a.cache = s
	}
	return a.cache
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("roomboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the snapshot store and flushes the logger.
func (a *App) Close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}
