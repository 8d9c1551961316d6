package handlers

import (
	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// Discord rejects button labels longer than this
const maxButtonLabel = 80

// NoMentions keeps echoed activity and user names from pinging anyone.
// Empty lists are sent so Discord does not fall back to parsing mentions.
var NoMentions = discord.AllowedMentions{
	Parse: []discord.AllowedMentionType{},
	Roles: []snowflake.ID{},
	Users: []snowflake.ID{},
}

// ChatEvent describes an interaction or message for the dialogue controller.
// Guild channels are named after the channel, direct messages after the user.
func ChatEvent(client bot.Client, channelID snowflake.ID, guildID *snowflake.ID, user discord.User, text string) dialogue.Event {
	ev := dialogue.Event{
		ChatID:   int64(channelID),
		ChatName: user.Username,
		Group:    guildID != nil,
		UserID:   int64(user.ID),
		UserName: user.Username,
		Text:     text,
	}
	if guildID == nil {
		return ev
	}

	ev.ChatName = channelID.String()
	if client == nil {
		return ev
	}
	if channel, ok := client.Caches().Channel(channelID); ok {
		ev.ChatName = channel.Name()
	} else if guild, ok := client.Caches().Guild(*guildID); ok {
		ev.ChatName = guild.Name
	}
	return ev
}

// MessageCreate renders a reply. Buttons are laid out five per row.
func MessageCreate(reply dialogue.Reply) discord.MessageCreate {
	mentions := NoMentions
	message := discord.MessageCreate{
		Content:         reply.Text,
		Components:      ActionRows(reply.Buttons),
		AllowedMentions: &mentions,
	}
	if reply.Ephemeral {
		message.Flags = discord.MessageFlagEphemeral
	}
	return message
}

func ActionRows(buttons []dialogue.Button) []discord.ContainerComponent {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([]discord.ContainerComponent, 0, (len(buttons)+config.MaxButtonsPerRow-1)/config.MaxButtonsPerRow)
	for start := 0; start < len(buttons) && len(rows) < config.MaxButtonRows; start += config.MaxButtonsPerRow {
		end := min(start+config.MaxButtonsPerRow, len(buttons))
		components := make([]discord.InteractiveComponent, 0, end-start)
		for _, b := range buttons[start:end] {
			components = append(components, button(b))
		}
		rows = append(rows, discord.NewActionRow(components...))
	}
	return rows
}

func button(b dialogue.Button) discord.ButtonComponent {
	label := b.Label
	if runes := []rune(label); len(runes) > maxButtonLabel {
		label = string(runes[:maxButtonLabel-1]) + "…"
	}

	switch b.Style {
	case dialogue.ButtonDanger:
		return discord.NewDangerButton(label, b.CustomID)
	case dialogue.ButtonSecondary:
		return discord.NewSecondaryButton(label, b.CustomID)
	default:
		return discord.NewPrimaryButton(label, b.CustomID)
	}
}
