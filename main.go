package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/activityboard/activityboard/activityboard"
	"github.com/activityboard/activityboard/activityboard/commands"
	"github.com/activityboard/activityboard/activityboard/database"
	"github.com/activityboard/activityboard/activityboard/database/repositories"
	"github.com/activityboard/activityboard/activityboard/handlers"
	"github.com/activityboard/activityboard/activityboard/logger"
	"github.com/activityboard/activityboard/activityboard/services"
	"github.com/activityboard/activityboard/activityboard/utils"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	// Console logger until the configured one is known
	slog.SetDefault(slog.New(logger.NewHandler(logger.Options{})))

	cfg, err := activityboard.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.New(cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource)))

	slog.Info("Starting Activity Board",
		slog.String("type", "sys"),
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	provider, err := cfg.SecretsProvider(ctx)
	if err != nil {
		slog.Error("Failed to create secrets provider", slog.Any("error", err))
		os.Exit(-1)
	}
	if provider != nil {
		if err = cfg.ResolveSecrets(ctx, provider); err != nil {
			slog.Error("Failed to resolve secrets", slog.Any("error", err))
			os.Exit(-1)
		}
	}
	if err = cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully", slog.String("type", "sys"))

	dbStartTime := time.Now()
	db, err := database.New(ctx, cfg.DB.ConnConfig())
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("type", "sys"),
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err = db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully", slog.String("type", "sys"))

	b := activityboard.New(*cfg, version, commit)
	b.DB = db
	b.Service = leaderboard.NewService(repositories.NewStore(db.BunDB()))

	sessions, err := dialogue.NewSessionStore(cfg.Session.Capacity, cfg.Session.Timeout.Duration)
	if err != nil {
		slog.Error("Failed to create session store", slog.Any("error", err))
		os.Exit(-1)
	}
	b.Controller = dialogue.NewController(b.Service, sessions)

	workers := utils.NewWorkers(context.Background())
	defer func() {
		if err := workers.Shutdown(10 * time.Second); err != nil {
			slog.Warn("Background workers did not stop in time", slog.Any("error", err))
		}
	}()

	b.Scoreboard = services.NewScoreboardImageService()
	workers.Go("scoreboard-probe", b.Scoreboard.Probe)

	h := handler.New()
	commands.Register(h, b)

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady), handlers.MessageHandler(b.Controller)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("error_details", fmt.Sprintf("%+v", err)),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	openCtx, openCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer openCancel()
	if err = b.Open(openCtx); err != nil {
		slog.Error("Failed to open connection",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	logger.LogSystem("Bot is running. Press CTRL-C to exit.", slog.String("run_mode", cfg.Bot.RunMode))
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.LogSystem("Shutting down bot...")
}
