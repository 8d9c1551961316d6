package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
)

var confirmReset bool

var resetCMD = &cobra.Command{
	Use:   "reset",
	Short: "truncate every leaderboard table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmReset {
			return errors.New("refusing to reset without --yes")
		}
		ctx := cmd.Context()

		db, err := openDB(ctx)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			return err
		}
		defer db.Close()

		if err := db.ResetAppTables(ctx); err != nil {
			return err
		}

		slog.Info("Tables reset successfully!")
		return nil
	},
}

func init() {
	resetCMD.Flags().BoolVar(&confirmReset, "yes", false, "confirm that all data should be deleted")
	rootCmd.AddCommand(resetCMD)
}
