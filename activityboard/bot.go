package activityboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/activityboard/activityboard/activityboard/database"
	"github.com/activityboard/activityboard/activityboard/services"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/httpserver"
	"github.com/disgoorg/paginator"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg        Config
	Client     bot.Client
	Paginator  *paginator.Manager
	Version    string
	Commit     string
	DB         *database.DB
	Service    leaderboard.Service
	Controller *dialogue.Controller
	Scoreboard *services.ScoreboardImageService
}

// SetupBot builds the client. Messages always come over the gateway; in http
// run mode interactions are delivered to the webhook server instead.
func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	opts := []bot.ConfigOpt{
		bot.WithGatewayConfigOpts(gateway.WithIntents(
			gateway.IntentGuilds,
			gateway.IntentGuildMessages,
			gateway.IntentDirectMessages,
			gateway.IntentMessageContent,
		)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds, cache.FlagChannels)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	}
	if b.Cfg.Bot.RunMode == RunModeHTTP {
		opts = append(opts, bot.WithHTTPServerConfigOpts(b.Cfg.Bot.PublicKey,
			httpserver.WithURL(b.Cfg.Bot.WebhookPath),
			httpserver.WithAddress(b.Cfg.Bot.WebhookAddress),
		))
	}

	client, err := disgo.New(b.Cfg.Bot.Token, opts...)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

// Open starts the webhook server when configured and connects the gateway
func (b *Bot) Open(ctx context.Context) error {
	if b.Cfg.Bot.RunMode == RunModeHTTP {
		if err := b.Client.OpenHTTPServer(); err != nil {
			return err
		}
		slog.Info("Interaction webhook listening",
			slog.String("type", "sys"),
			slog.String("address", b.Cfg.Bot.WebhookAddress),
			slog.String("path", b.Cfg.Bot.WebhookPath))
	}
	return b.Client.OpenGateway(ctx)
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Activity Board is now ready",
		slog.String("type", "sys"),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
		slog.String("run_mode", b.Cfg.Bot.RunMode))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithListeningActivity("/start"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
