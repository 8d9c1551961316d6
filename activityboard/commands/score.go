package commands

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/activityboard/activityboard/activityboard"
	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/handlers"
	"github.com/activityboard/activityboard/activityboard/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
)

var ShowScore = discord.SlashCommandCreate{
	Name:        "show_score",
	Description: "Show this chat's leaderboard",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "image",
			Description: "Render the leaderboard as an image",
			Required:    false,
		},
	},
}

var ShowLog = discord.SlashCommandCreate{
	Name:        "show_log",
	Description: "Show the latest recorded activities of this chat",
}

func ShowScoreHandler(b *activityboard.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := handlerContext()
		defer cancel()

		ev := commandEvent(e)
		replies, err := b.Controller.ShowScore(ctx, ev)
		if err != nil {
			return utils.EH.HandleError(e, err)
		}

		wantImage := e.SlashCommandInteractionData().Bool("image")
		if !wantImage || b.Scoreboard == nil || !b.Scoreboard.Available() || len(replies) == 0 || len(replies[0].Scores) == 0 {
			return respond(e, replies)
		}

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		renderCtx, renderCancel := context.WithTimeout(ctx, config.ImageRenderTimeout)
		defer renderCancel()

		imageBytes, err := b.Scoreboard.Render(renderCtx, ev.ChatName, replies[0].Scores)
		if err != nil {
			slog.Warn("Scoreboard image failed, sending text",
				slog.String("type", "cmd"),
				slog.Int64("chat_id", ev.ChatID),
				slog.String("error", err.Error()))
			mentions := handlers.NoMentions
			_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
				Content:         &replies[0].Text,
				AllowedMentions: &mentions,
			})
			return err
		}

		file := discord.File{
			Name:        "scoreboard.png",
			Description: fmt.Sprintf("Leaderboard %s", ev.ChatName),
			Reader:      bytes.NewReader(imageBytes),
		}
		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Files: []*discord.File{&file},
		})
		return err
	}
}

// ShowLogHandler shows the first page as plain text when everything fits,
// otherwise pages through the entries with the paginator
func ShowLogHandler(b *activityboard.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := handlerContext()
		defer cancel()

		ev := commandEvent(e)
		replies, err := b.Controller.ShowLog(ctx, ev)
		if err != nil {
			return utils.EH.HandleError(e, err)
		}
		if len(replies) == 0 || len(replies[0].Log) <= config.LogEntriesPerPage {
			return respond(e, replies)
		}

		entries := replies[0].Log
		totalPages := (len(entries) + config.LogEntriesPerPage - 1) / config.LogEntriesPerPage

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.LogEntriesPerPage
				end := min(start+config.LogEntriesPerPage, len(entries))

				embed.
					SetTitle(fmt.Sprintf("📜 Log %s", ev.ChatName)).
					SetDescription(utils.FormatLog(entries[start:end])).
					SetColor(config.EmbedDefaultColor).
					SetFooter(fmt.Sprintf("Page %d/%d • Entries: %d", page+1, totalPages, len(entries)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
