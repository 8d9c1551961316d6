package handlers

import (
	"context"
	"log/slog"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/logger"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
)

// MessageHandler feeds plain channel messages to the dialogue while their
// author is being asked for an activity name or point value
func MessageHandler(controller *dialogue.Controller) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.MessageCreate) {
		if e.Message.Author.Bot || e.Message.Content == "" {
			return
		}
		if !controller.AwaitsText(int64(e.ChannelID), int64(e.Message.Author.ID)) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		ev := ChatEvent(e.Client(), e.ChannelID, e.GuildID, e.Message.Author, e.Message.Content)
		replies, err := controller.Text(ctx, ev)
		if err != nil {
			logger.LogError("Dialogue message failed", err,
				slog.Int64("chat_id", ev.ChatID),
				slog.String("user_name", ev.UserName))
			replies = []dialogue.Reply{{Text: "Something went wrong, please try again"}}
		}

		for _, reply := range replies {
			reply.Ephemeral = false
			if _, err := e.Client().Rest().CreateMessage(e.ChannelID, MessageCreate(reply)); err != nil {
				slog.Error("Failed to send dialogue reply",
					slog.String("type", "dlg"),
					slog.Int64("chat_id", ev.ChatID),
					slog.Any("error", err))
				return
			}
		}
	})
}
