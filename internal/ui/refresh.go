package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the local snapshot",
		Long: `Fetch the room directory and working hours and store them locally.

The dashboard falls back to this snapshot when the backend is
unreachable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache := a.snapshots()
			if cache == nil {
				return fmt.Errorf("snapshot store unavailable at %s", a.config.Storage.DBPath)
			}

			rooms, err := a.loadDirectory(cmd.Context())
			if err != nil {
				return err
			}
			if err := cache.SaveSnapshot(cmd.Context(), rooms); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}

			fmt.Printf("Snapshot saved: %d rooms.\n", len(rooms))
			return nil
		},
	}
}
