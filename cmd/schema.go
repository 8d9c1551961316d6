package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var schemaCMD = &cobra.Command{
	Use:   "schema",
	Short: "create the tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := openDB(ctx)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			return err
		}

		slog.Info("Schema initialized successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCMD)
}
