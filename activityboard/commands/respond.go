package commands

import (
	"context"
	"strings"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/handlers"
	"github.com/activityboard/activityboard/activityboard/utils"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

type commandStep func(ctx context.Context, ev dialogue.Event) ([]dialogue.Reply, error)

type componentStep func(ctx context.Context, ev dialogue.Event, payload string) ([]dialogue.Reply, error)

func commandEvent(e *handler.CommandEvent) dialogue.Event {
	return handlers.ChatEvent(e.Client(), e.ChannelID(), e.GuildID(), e.User(), "")
}

func componentEvent(e *handler.ComponentEvent) dialogue.Event {
	return handlers.ChatEvent(e.Client(), e.ChannelID(), e.GuildID(), e.User(), "")
}

// handlerContext ends no later than the logging wrapper stops waiting for
// the handler
func handlerContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
}

// dialogueCommand runs one controller step for a slash command
func dialogueCommand(step commandStep) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := handlerContext()
		defer cancel()

		replies, err := step(ctx, commandEvent(e))
		if err != nil {
			return utils.EH.HandleError(e, err)
		}
		return respond(e, replies)
	}
}

// dialogueComponent runs one controller step for a button press. The part
// of the custom id after prefix is handed to the step.
func dialogueComponent(prefix string, step componentStep) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := handlerContext()
		defer cancel()

		payload := strings.TrimPrefix(e.Data.CustomID(), prefix)
		replies, err := step(ctx, componentEvent(e), payload)
		if err != nil {
			return utils.EH.HandleError(e, err)
		}
		return respondComponent(e, replies)
	}
}

func respond(e *handler.CommandEvent, replies []dialogue.Reply) error {
	for i, reply := range replies {
		if i == 0 {
			if err := e.CreateMessage(handlers.MessageCreate(reply)); err != nil {
				return err
			}
			continue
		}
		if _, err := e.CreateFollowupMessage(handlers.MessageCreate(reply)); err != nil {
			return err
		}
	}
	return nil
}

// respondComponent strips the buttons from the pressed message so a menu
// can only be used once, then posts the replies. Ephemeral first replies
// leave the pressed message as it is.
func respondComponent(e *handler.ComponentEvent, replies []dialogue.Reply) error {
	if len(replies) == 0 {
		return e.DeferUpdateMessage()
	}

	rest := replies
	if replies[0].Ephemeral {
		if err := e.CreateMessage(handlers.MessageCreate(replies[0])); err != nil {
			return err
		}
		rest = replies[1:]
	} else if err := e.UpdateMessage(discord.MessageUpdate{
		Components: &[]discord.ContainerComponent{},
	}); err != nil {
		return err
	}

	for _, reply := range rest {
		if _, err := e.CreateFollowupMessage(handlers.MessageCreate(reply)); err != nil {
			return err
		}
	}
	return nil
}
