package commands

import (
	"github.com/activityboard/activityboard/activityboard"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Start = discord.SlashCommandCreate{
	Name:        "start",
	Description: "Join this chat's leaderboard and open the menu",
}

var Cancel = discord.SlashCommandCreate{
	Name:        "cancel",
	Description: "End the current conversation",
}

func StartHandler(b *activityboard.Bot) handler.CommandHandler {
	return dialogueCommand(b.Controller.Start)
}

func CancelHandler(b *activityboard.Bot) handler.CommandHandler {
	return dialogueCommand(b.Controller.Cancel)
}

// MenuComponent handles the main menu buttons
func MenuComponent(b *activityboard.Bot) handler.ComponentHandler {
	return dialogueComponent(dialogue.MenuPrefix, b.Controller.Menu)
}
