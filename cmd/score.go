package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/database/repositories"
	"github.com/activityboard/activityboard/activityboard/utils"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
	"github.com/spf13/cobra"
)

var withLog bool

var scoreCMD = &cobra.Command{
	Use:   "score <channel-id>",
	Short: "print the score of a leaderboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		leaderboardID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid channel id %q: %w", args[0], err)
		}
		ctx := cmd.Context()

		db, err := openDB(ctx)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			return err
		}
		defer db.Close()

		svc := leaderboard.NewService(repositories.NewStore(db.BunDB()))
		entries, err := svc.Score(ctx, leaderboardID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No participants yet")
			return nil
		}
		for i, entry := range entries {
			fmt.Fprintf(out, "%-4s %-32s %s\n", utils.Rank(i), entry.Name, utils.FormatNumber(entry.Score))
		}

		if !withLog {
			return nil
		}
		logEntries, err := svc.Log(ctx, leaderboardID, config.LogEntriesLimit)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		for _, entry := range logEntries {
			fmt.Fprintln(out, utils.FormatLogEntry(entry))
		}
		return nil
	},
}

func init() {
	scoreCMD.Flags().BoolVar(&withLog, "log", false, "also print the latest recorded activities")
	rootCmd.AddCommand(scoreCMD)
}
