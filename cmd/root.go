package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/activityboard/activityboard/activityboard"
	"github.com/activityboard/activityboard/activityboard/database"
	"github.com/activityboard/activityboard/activityboard/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dsn        string
)

var rootCmd = &cobra.Command{
	Use:           "boardctl",
	Short:         "operator tools for the activity board database",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(logger.NewHandler(logger.Options{})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "postgres connection string, overrides the [db] config")
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.String("type", "sys"), slog.Any("error", err))
		os.Exit(1)
	}
}

// openDB connects with --dsn when given, otherwise with the bot's
// configuration including secrets
func openDB(ctx context.Context) (*database.DB, error) {
	if dsn != "" {
		db, err := database.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}

	cfg, err := activityboard.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	provider, err := cfg.SecretsProvider(ctx)
	if err != nil {
		return nil, err
	}
	if provider != nil {
		if err := cfg.ResolveSecrets(ctx, provider); err != nil {
			return nil, err
		}
	}
	if cfg.DB.User == "" || cfg.DB.Database == "" {
		return nil, fmt.Errorf("database user and name are required in %s", configPath)
	}
	return database.New(ctx, cfg.DB.ConnConfig())
}
