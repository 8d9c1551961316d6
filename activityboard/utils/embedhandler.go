package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/database/repositories"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// ResponseHandler provides standardized error responses for commands and components
type ResponseHandler struct{}

var EH = &ResponseHandler{}

type ErrorType int

const (
	// UserError - input the bot cannot act on
	UserError ErrorType = iota
	// SystemError - database failures, timeouts
	SystemError
	// NotFoundError - the activity or record is gone
	NotFoundError
)

func getErrorPrefix(errorType ErrorType) string {
	switch errorType {
	case UserError:
		return "⚠️"
	case NotFoundError:
		return "🔍"
	default:
		return "🔧"
	}
}

func getErrorColor(errorType ErrorType) int {
	switch errorType {
	case UserError:
		return config.WarningColor
	case NotFoundError:
		return config.InfoColor
	default:
		return config.ErrorColor
	}
}

// ClassifyError maps a handler error to what the user is told
func ClassifyError(err error) (ErrorType, string) {
	switch {
	case errors.Is(err, leaderboard.ErrNotFound), repositories.IsNotFound(err):
		return NotFoundError, "That item no longer exists"
	case errors.Is(err, leaderboard.ErrEmptyName), errors.Is(err, leaderboard.ErrDuplicateActivity):
		return UserError, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return SystemError, "The request took too long, please try again"
	case repositories.IsRepositoryError(err):
		return SystemError, "The leaderboard is unavailable right now, please try again later"
	default:
		return SystemError, "Something went wrong, please try again"
	}
}

func errorEmbed(err error) discord.Embed {
	errorType, message := ClassifyError(err)
	return discord.Embed{
		Description: getErrorPrefix(errorType) + " " + message,
		Color:       getErrorColor(errorType),
	}
}

// CreateErrorEmbed answers a command with an error embed
func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, err error) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{errorEmbed(err)},
	})
}

// CreateEphemeralError answers a component press with an error only the presser sees
func (h *ResponseHandler) CreateEphemeralError(event *handler.ComponentEvent, err error) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{errorEmbed(err)},
		Flags:  discord.MessageFlagEphemeral,
	})
}

// HandleError reports err to the user and returns it so the logging
// wrapper records the failure
func (h *ResponseHandler) HandleError(event interface{}, err error) error {
	var sendErr error
	switch e := event.(type) {
	case *handler.CommandEvent:
		sendErr = h.CreateErrorEmbed(e, err)
	case *handler.ComponentEvent:
		sendErr = h.CreateEphemeralError(e, err)
	default:
		return fmt.Errorf("unsupported event type for error handling: %w", err)
	}
	if sendErr != nil {
		return errors.Join(err, sendErr)
	}
	return err
}
