package commands

import (
	"github.com/activityboard/activityboard/activityboard"
	"github.com/activityboard/activityboard/activityboard/handlers"
	"github.com/activityboard/activityboard/internal/domain/dialogue"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Start,
	AddActivity,
	ExecuteActivity,
	DeleteActivity,
	ShowScore,
	ShowActivities,
	ShowLog,
	CancelActivity,
	Cancel,
}

// Register binds every slash command, autocomplete and button handler
func Register(r handler.Router, b *activityboard.Bot) {
	r.Command("/start", handlers.WrapWithLogging("start", StartHandler(b)))
	r.Command("/add_activity", handlers.WrapWithLogging("add_activity", AddActivityHandler(b)))
	r.Command("/execute_activity", handlers.WrapWithLogging("execute_activity", ExecuteActivityHandler(b)))
	r.Autocomplete("/execute_activity", ActivityAutocomplete(b))
	r.Command("/delete_activity", handlers.WrapWithLogging("delete_activity", DeleteActivityHandler(b)))
	r.Autocomplete("/delete_activity", ActivityAutocomplete(b))
	r.Command("/show_score", handlers.WrapWithLogging("show_score", ShowScoreHandler(b)))
	r.Command("/show_activities", handlers.WrapWithLogging("show_activities", ShowActivitiesHandler(b)))
	r.Command("/show_log", handlers.WrapWithLogging("show_log", ShowLogHandler(b)))
	r.Command("/cancel_activity", handlers.WrapWithLogging("cancel_activity", CancelActivityHandler(b)))
	r.Command("/cancel", handlers.WrapWithLogging("cancel", CancelHandler(b)))

	r.Component(dialogue.MenuPrefix+"{payload}", handlers.WrapComponentWithLogging("menu", MenuComponent(b)))
	r.Component(dialogue.ExecutePrefix+"{payload}", handlers.WrapComponentWithLogging("execute", ExecuteComponent(b)))
	r.Component(dialogue.DeletePrefix+"{payload}", handlers.WrapComponentWithLogging("delete", DeleteComponent(b)))
	r.Component(dialogue.CancelPerformedPrefix+"{payload}", handlers.WrapComponentWithLogging("cancel-performed", CancelPerformedComponent(b)))
}
