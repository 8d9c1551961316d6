package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/activityboard/activityboard/activityboard"
	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/utils"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// Discord shows at most this many autocomplete choices
const maxAutocompleteChoices = 25

var AddActivity = discord.SlashCommandCreate{
	Name:        "add_activity",
	Description: "Add a new activity to this chat's leaderboard",
}

var ExecuteActivity = discord.SlashCommandCreate{
	Name:        "execute_activity",
	Description: "Record an activity you performed",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "activity",
			Description:  "Activity to record, leave empty to pick from a list",
			Required:     false,
			Autocomplete: true,
		},
	},
}

var DeleteActivity = discord.SlashCommandCreate{
	Name:        "delete_activity",
	Description: "Delete an activity and its history",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "activity",
			Description:  "Activity to delete, leave empty to pick from a list",
			Required:     false,
			Autocomplete: true,
		},
	},
}

var ShowActivities = discord.SlashCommandCreate{
	Name:        "show_activities",
	Description: "List the activities of this chat",
}

var CancelActivity = discord.SlashCommandCreate{
	Name:        "cancel_activity",
	Description: "Undo one of your recorded activities",
}

func AddActivityHandler(b *activityboard.Bot) handler.CommandHandler {
	return dialogueCommand(b.Controller.AddActivity)
}

func ExecuteActivityHandler(b *activityboard.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		name := e.SlashCommandInteractionData().String("activity")
		return dialogueCommand(func(ctx context.Context, ev dialogue.Event) ([]dialogue.Reply, error) {
			return b.Controller.ExecuteActivity(ctx, ev, name)
		})(e)
	}
}

// ActivityAutocomplete suggests the chat's activities closest to what has
// been typed so far
func ActivityAutocomplete(b *activityboard.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		focused := e.Data.Focused()
		if focused.Name != "activity" {
			return nil
		}

		query := ""
		if focused.Value != nil {
			var s string
			if err := json.Unmarshal(focused.Value, &s); err != nil {
				slog.Error("Failed to unmarshal focused.Value",
					slog.String("type", "cmd"),
					slog.String("error", err.Error()))
				return e.AutocompleteResult([]discord.AutocompleteChoice{})
			}
			query = strings.TrimSpace(s)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		activities, err := b.Service.SimilarActivities(ctx, int64(e.ChannelID()), query, maxAutocompleteChoices)
		if err != nil {
			slog.Error("Failed to search activities",
				slog.String("type", "cmd"),
				slog.String("error", err.Error()),
				slog.String("query", query))
			return e.AutocompleteResult([]discord.AutocompleteChoice{})
		}

		choices := make([]discord.AutocompleteChoice, 0, len(activities))
		for _, a := range activities {
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  truncate(a.Name+" - "+utils.FormatNumber(int64(a.Points))+" points", config.MaxChoiceNameLength),
				Value: a.Name,
			})
		}
		return e.AutocompleteResult(choices)
	}
}

func DeleteActivityHandler(b *activityboard.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		name := e.SlashCommandInteractionData().String("activity")
		return dialogueCommand(func(ctx context.Context, ev dialogue.Event) ([]dialogue.Reply, error) {
			return b.Controller.DeleteActivity(ctx, ev, name)
		})(e)
	}
}

func ShowActivitiesHandler(b *activityboard.Bot) handler.CommandHandler {
	return dialogueCommand(b.Controller.ShowActivities)
}

func CancelActivityHandler(b *activityboard.Bot) handler.CommandHandler {
	return dialogueCommand(b.Controller.CancelActivity)
}

func ExecuteComponent(b *activityboard.Bot) handler.ComponentHandler {
	return dialogueComponent(dialogue.ExecutePrefix, b.Controller.SelectExecute)
}

func DeleteComponent(b *activityboard.Bot) handler.ComponentHandler {
	return dialogueComponent(dialogue.DeletePrefix, b.Controller.SelectDelete)
}

func CancelPerformedComponent(b *activityboard.Bot) handler.ComponentHandler {
	return dialogueComponent(dialogue.CancelPerformedPrefix, b.Controller.SelectCancel)
}

func truncate(s string, limit int) string {
	if runes := []rune(s); len(runes) > limit {
		return string(runes[:limit-1]) + "…"
	}
	return s
}
