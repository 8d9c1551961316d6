package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/utils"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
)

const (
	msgStart            = "Ok, let's start"
	msgJoined           = "%s was added to the Leaderboard %s"
	msgFirstActivity    = "Send me the name of a first activity"
	msgAskName          = "Ok, send me name of the Activity?"
	msgEmptyName        = "Activity name can't be empty. Send me the name of the Activity"
	msgDuplicate        = "Activity %s already exists 🤔 Send me another name"
	msgActivityAdded    = "Ok. Activity %s added"
	msgAskPoints        = "How many points should I assign for %s?"
	msgNotNumber        = "%s is not a number. Please enter number 😊"
	msgPointsSet        = "Ok. Activity %s gives %d points 😎"
	msgMenu             = "What would you like to do next? 😏"
	msgChooseExecute    = "What Activity did you perform?"
	msgChooseDelete     = "What Activity you would like to delete?"
	msgChooseCancel     = "Which performed Activity should I cancel?"
	msgNoActivities     = "There are no activities yet. Use /add_activity to create the first one"
	msgNoActivitiesLeft = "✋ There are no activities left 😐"
	msgNotFound         = "Activity %s not found"
	msgMoreActivities   = "Only the first %d activities are listed. Pass the name to %s for the others"
	msgSimilar          = "Did you mean: %s?"
	msgPerformed        = "%s performed %s and got %d points 💪"
	msgDeleted          = "Activity %s was deleted ❌"
	msgCancelled        = "%s canceled, %d points removed from %s ↩️"
	msgNothingToCancel  = "You have no performed activities to cancel"
	msgBye              = "Ok. Bye 😕"
	msgGone             = "That item no longer exists"
	msgNotActive        = "This menu is not active for you"
	msgNoParticipants   = "Nobody is on the Leaderboard yet. Use /start to join"
	msgEmptyLog         = "No activities were performed yet"
)

// Controller runs the conversation. Every operation returns the replies to
// send, in order, and leaves the caller's session in its next state.
type Controller struct {
	svc      leaderboard.Service
	sessions *SessionStore
}

func NewController(svc leaderboard.Service, sessions *SessionStore) *Controller {
	return &Controller{
		svc:      svc,
		sessions: sessions,
	}
}

// AwaitsText reports whether the user's next free text message belongs to
// the conversation
func (c *Controller) AwaitsText(chatID, userID int64) bool {
	return c.sessions.Get(chatID, userID).State.awaitsText()
}

func (c *Controller) Start(ctx context.Context, ev Event) ([]Reply, error) {
	membership, err := c.svc.EnsureMembership(ctx, ev.member())
	if err != nil {
		return nil, err
	}

	replies := []Reply{{Text: msgStart}}
	if ev.Group && membership.Joined {
		replies = append(replies, text(msgJoined, ev.UserName, ev.ChatName))
	}

	activities, err := c.svc.Activities(ctx, ev.ChatID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		c.sessions.Set(ev.ChatID, ev.UserID, Session{State: StateActivity})
		return append(replies, Reply{Text: msgFirstActivity}), nil
	}
	return append(replies, c.menu(ev)), nil
}

func (c *Controller) AddActivity(ctx context.Context, ev Event) ([]Reply, error) {
	if _, err := c.svc.EnsureMembership(ctx, ev.member()); err != nil {
		return nil, err
	}
	return c.askName(ev), nil
}

// Text handles a free text message. Messages outside ACTIVITY and POINTS
// produce no replies.
func (c *Controller) Text(ctx context.Context, ev Event) ([]Reply, error) {
	session := c.sessions.Get(ev.ChatID, ev.UserID)
	if !session.State.awaitsText() {
		return nil, nil
	}
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}

	switch session.State {
	case StateActivity:
		return c.receiveName(ctx, ev, session)
	case StatePoints:
		return c.receivePoints(ctx, ev, session)
	default:
		return nil, nil
	}
}

func (c *Controller) receiveName(ctx context.Context, ev Event, session Session) ([]Reply, error) {
	name := strings.TrimSpace(ev.Text)
	if name == "" {
		return []Reply{{Text: msgEmptyName}}, nil
	}

	_, err := c.svc.FindActivityByName(ctx, ev.ChatID, name)
	switch {
	case err == nil:
		return c.duplicate(ctx, ev, name)
	case !errors.Is(err, leaderboard.ErrNotFound):
		return nil, err
	}

	session.State = StatePoints
	session.PendingActivityName = name
	c.sessions.Set(ev.ChatID, ev.UserID, session)
	return []Reply{
		text(msgActivityAdded, name),
		text(msgAskPoints, name),
	}, nil
}

func (c *Controller) receivePoints(ctx context.Context, ev Event, session Session) ([]Reply, error) {
	raw := strings.TrimSpace(ev.Text)
	points, err := strconv.Atoi(raw)
	if err != nil {
		return []Reply{text(msgNotNumber, raw)}, nil
	}

	session.PendingPoints = points
	c.sessions.Set(ev.ChatID, ev.UserID, session)

	activity, err := c.svc.CreateActivity(ctx, ev.ChatID, ev.UserID, session.PendingActivityName, points)
	switch {
	case errors.Is(err, leaderboard.ErrDuplicateActivity):
		c.sessions.Set(ev.ChatID, ev.UserID, Session{State: StateActivity})
		return c.duplicate(ctx, ev, session.PendingActivityName)
	case errors.Is(err, leaderboard.ErrEmptyName):
		return c.askName(ev), nil
	case err != nil:
		return nil, err
	}

	return []Reply{
		text(msgPointsSet, activity.Name, activity.Points),
		c.menu(ev),
	}, nil
}

// duplicate rejects a name and lists the existing activities it resembles
func (c *Controller) duplicate(ctx context.Context, ev Event, name string) ([]Reply, error) {
	reply := text(msgDuplicate, name)
	if hint := c.similarHint(ctx, ev.ChatID, name); hint != "" {
		reply.Text += "\n" + hint
	}
	return []Reply{reply}, nil
}

func (c *Controller) similarHint(ctx context.Context, chatID int64, name string) string {
	similar, err := c.svc.SimilarActivities(ctx, chatID, name, 3)
	if err != nil || len(similar) == 0 {
		return ""
	}
	names := make([]string, 0, len(similar))
	for _, a := range similar {
		names = append(names, a.Name)
	}
	return fmt.Sprintf(msgSimilar, strings.Join(names, ", "))
}

// Menu handles a press on the idle menu
func (c *Controller) Menu(ctx context.Context, ev Event, rawChoice string) ([]Reply, error) {
	if c.sessions.Get(ev.ChatID, ev.UserID).State != StateIdle {
		return notActive(), nil
	}
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}

	choice, err := strconv.Atoi(rawChoice)
	if err != nil {
		return []Reply{c.menu(ev)}, nil
	}

	switch MenuChoice(choice) {
	case MenuExecute:
		return c.promptExecute(ctx, ev)
	case MenuAdd:
		return c.askName(ev), nil
	case MenuDelete:
		return c.promptDelete(ctx, ev)
	case MenuShowScore:
		reply, err := c.scoreReply(ctx, ev)
		if err != nil {
			return nil, err
		}
		return []Reply{reply, c.menu(ev)}, nil
	case MenuShowLog:
		reply, err := c.logReply(ctx, ev)
		if err != nil {
			return nil, err
		}
		return []Reply{reply, c.menu(ev)}, nil
	case MenuEnd:
		return c.end(ev), nil
	default:
		return []Reply{c.menu(ev)}, nil
	}
}

// ExecuteActivity lists the activities to pick from. A non-empty name skips
// the list and records that activity right away.
func (c *Controller) ExecuteActivity(ctx context.Context, ev Event, name string) ([]Reply, error) {
	if _, err := c.svc.EnsureMembership(ctx, ev.member()); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return c.promptExecute(ctx, ev)
	}

	activity, err := c.svc.FindActivityByName(ctx, ev.ChatID, name)
	if errors.Is(err, leaderboard.ErrNotFound) {
		c.sessions.Clear(ev.ChatID, ev.UserID)
		reply := text(msgNotFound, name)
		if hint := c.similarHint(ctx, ev.ChatID, name); hint != "" {
			reply.Text += "\n" + hint
		}
		return []Reply{reply}, nil
	}
	if err != nil {
		return nil, err
	}
	return c.perform(ctx, ev, activity.ID)
}

func (c *Controller) promptExecute(ctx context.Context, ev Event) ([]Reply, error) {
	activities, err := c.svc.Activities(ctx, ev.ChatID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		c.sessions.Clear(ev.ChatID, ev.UserID)
		return []Reply{{Text: msgNoActivities}}, nil
	}

	c.sessions.Move(ev.ChatID, ev.UserID, StateExecuteActivity)
	return []Reply{{
		Text:    selectionText(msgChooseExecute, "/execute_activity", len(activities)),
		Buttons: activityButtons(ExecutePrefix, activities),
	}}, nil
}

func (c *Controller) SelectExecute(ctx context.Context, ev Event, payload string) ([]Reply, error) {
	if c.sessions.Get(ev.ChatID, ev.UserID).State != StateExecuteActivity {
		return notActive(), nil
	}
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}

	activityID, cancel, err := ParseSelection(payload)
	if err != nil {
		return nil, err
	}
	if cancel {
		return []Reply{c.menu(ev)}, nil
	}
	return c.perform(ctx, ev, activityID)
}

func (c *Controller) perform(ctx context.Context, ev Event, activityID int64) ([]Reply, error) {
	performed, err := c.svc.ExecuteActivity(ctx, ev.member(), activityID)
	if errors.Is(err, leaderboard.ErrNotFound) {
		c.sessions.Clear(ev.ChatID, ev.UserID)
		return []Reply{{Text: msgGone}}, nil
	}
	if err != nil {
		return nil, err
	}

	c.sessions.Clear(ev.ChatID, ev.UserID)
	return []Reply{text(msgPerformed, ev.UserName, performed.Activity.Name, performed.Activity.Points)}, nil
}

// DeleteActivity lists the activities to delete. A non-empty name skips the
// list and deletes that activity right away.
func (c *Controller) DeleteActivity(ctx context.Context, ev Event, name string) ([]Reply, error) {
	if _, err := c.svc.EnsureMembership(ctx, ev.member()); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return c.promptDelete(ctx, ev)
	}

	activity, err := c.svc.FindActivityByName(ctx, ev.ChatID, name)
	if errors.Is(err, leaderboard.ErrNotFound) {
		c.sessions.Clear(ev.ChatID, ev.UserID)
		reply := text(msgNotFound, name)
		if hint := c.similarHint(ctx, ev.ChatID, name); hint != "" {
			reply.Text += "\n" + hint
		}
		return []Reply{reply}, nil
	}
	if err != nil {
		return nil, err
	}
	return c.remove(ctx, ev, activity.ID)
}

func (c *Controller) promptDelete(ctx context.Context, ev Event) ([]Reply, error) {
	activities, err := c.svc.Activities(ctx, ev.ChatID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return []Reply{{Text: msgNoActivitiesLeft}, c.menu(ev)}, nil
	}

	c.sessions.Move(ev.ChatID, ev.UserID, StateDelete)
	return []Reply{{
		Text:    selectionText(msgChooseDelete, "/delete_activity", len(activities)),
		Buttons: activityButtons(DeletePrefix, activities),
	}}, nil
}

func (c *Controller) SelectDelete(ctx context.Context, ev Event, payload string) ([]Reply, error) {
	if c.sessions.Get(ev.ChatID, ev.UserID).State != StateDelete {
		return notActive(), nil
	}
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}

	activityID, cancel, err := ParseSelection(payload)
	if err != nil {
		return nil, err
	}
	if cancel {
		return []Reply{c.menu(ev)}, nil
	}
	return c.remove(ctx, ev, activityID)
}

func (c *Controller) remove(ctx context.Context, ev Event, activityID int64) ([]Reply, error) {
	activity, err := c.svc.DeleteActivity(ctx, ev.ChatID, activityID)
	c.sessions.Clear(ev.ChatID, ev.UserID)
	if errors.Is(err, leaderboard.ErrNotFound) {
		return []Reply{{Text: msgGone}}, nil
	}
	if err != nil {
		return nil, err
	}
	return []Reply{text(msgDeleted, activity.Name)}, nil
}

// CancelActivity lists the user's latest executions so one can be undone
func (c *Controller) CancelActivity(ctx context.Context, ev Event) ([]Reply, error) {
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}

	performed, err := c.svc.PerformedByUser(ctx, ev.UserID, ev.ChatID, config.RecentPerformedLimit)
	if err != nil {
		return nil, err
	}
	if len(performed) == 0 {
		c.sessions.Clear(ev.ChatID, ev.UserID)
		return []Reply{{Text: msgNothingToCancel}}, nil
	}

	buttons := make([]Button, 0, len(performed)+1)
	for i, p := range performed {
		buttons = append(buttons, Button{
			Label:    fmt.Sprintf("%s - %d points (%s)", p.Activity.Name, p.Activity.Points, p.PerformedAt.UTC().Format("Jan 2 15:04")),
			CustomID: selectionID(CancelPerformedPrefix, i, p.ID),
			Style:    ButtonSecondary,
		})
	}
	buttons = append(buttons, cancelButton(CancelPerformedPrefix))

	c.sessions.Move(ev.ChatID, ev.UserID, StateCancel)
	return []Reply{{Text: msgChooseCancel, Buttons: buttons}}, nil
}

func (c *Controller) SelectCancel(ctx context.Context, ev Event, payload string) ([]Reply, error) {
	if c.sessions.Get(ev.ChatID, ev.UserID).State != StateCancel {
		return notActive(), nil
	}
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}

	performedID, cancel, err := ParseSelection(payload)
	if err != nil {
		return nil, err
	}
	if cancel {
		return []Reply{c.menu(ev)}, nil
	}

	performed, err := c.svc.CancelPerformed(ctx, ev.UserID, ev.ChatID, performedID)
	c.sessions.Clear(ev.ChatID, ev.UserID)
	if errors.Is(err, leaderboard.ErrNotFound) {
		return []Reply{{Text: msgGone}}, nil
	}
	if err != nil {
		return nil, err
	}
	return []Reply{text(msgCancelled, performed.Activity.Name, performed.Activity.Points, ev.UserName)}, nil
}

// ShowScore, ShowActivities and ShowLog only read and leave the session alone

func (c *Controller) ShowScore(ctx context.Context, ev Event) ([]Reply, error) {
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}
	reply, err := c.scoreReply(ctx, ev)
	if err != nil {
		return nil, err
	}
	return []Reply{reply}, nil
}

func (c *Controller) ShowActivities(ctx context.Context, ev Event) ([]Reply, error) {
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}
	activities, err := c.svc.Activities(ctx, ev.ChatID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return []Reply{{Text: msgNoActivities}}, nil
	}
	return []Reply{{Text: fmt.Sprintf("Activities of %s:\n%s", ev.ChatName, utils.FormatActivities(activities))}}, nil
}

func (c *Controller) ShowLog(ctx context.Context, ev Event) ([]Reply, error) {
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}
	reply, err := c.logReply(ctx, ev)
	if err != nil {
		return nil, err
	}
	return []Reply{reply}, nil
}

func (c *Controller) Cancel(ctx context.Context, ev Event) ([]Reply, error) {
	if err := c.touch(ctx, ev); err != nil {
		return nil, err
	}
	return c.end(ev), nil
}

func (c *Controller) end(ev Event) []Reply {
	c.sessions.Clear(ev.ChatID, ev.UserID)
	return []Reply{{Text: msgBye}}
}

// touch stores the user's current display name. Operations that ensure
// membership do this as part of it.
func (c *Controller) touch(ctx context.Context, ev Event) error {
	return c.svc.RefreshUser(ctx, ev.UserID, ev.UserName)
}

func (c *Controller) scoreReply(ctx context.Context, ev Event) (Reply, error) {
	entries, err := c.svc.Score(ctx, ev.ChatID)
	if err != nil {
		return Reply{}, err
	}
	if len(entries) == 0 {
		return Reply{Text: msgNoParticipants}, nil
	}
	return Reply{
		Text:   fmt.Sprintf("🏆 Leaderboard %s\n%s", ev.ChatName, utils.FormatScoreboard(entries)),
		Scores: entries,
	}, nil
}

func (c *Controller) logReply(ctx context.Context, ev Event) (Reply, error) {
	entries, err := c.svc.Log(ctx, ev.ChatID, config.LogEntriesLimit)
	if err != nil {
		return Reply{}, err
	}
	if len(entries) == 0 {
		return Reply{Text: msgEmptyLog}, nil
	}
	page := entries[:min(len(entries), config.LogEntriesPerPage)]
	return Reply{
		Text: utils.FormatLog(page),
		Log:  entries,
	}, nil
}

func (c *Controller) askName(ev Event) []Reply {
	c.sessions.Set(ev.ChatID, ev.UserID, Session{State: StateActivity})
	return []Reply{{Text: msgAskName}}
}

// menu moves the session to IDLE and drops any pending input
func (c *Controller) menu(ev Event) Reply {
	c.sessions.Set(ev.ChatID, ev.UserID, Session{State: StateIdle})
	return Reply{Text: msgMenu, Buttons: menuButtons()}
}

func activityButtons(prefix string, activities []leaderboard.Activity) []Button {
	if len(activities) > config.MaxSelectionItems {
		activities = activities[:config.MaxSelectionItems]
	}
	buttons := make([]Button, 0, len(activities)+1)
	for i, a := range activities {
		buttons = append(buttons, Button{
			Label:    fmt.Sprintf("%s - %d points", a.Name, a.Points),
			CustomID: selectionID(prefix, i, a.ID),
			Style:    ButtonSecondary,
		})
	}
	return append(buttons, cancelButton(prefix))
}

// selectionText notes when a list was cut to the button limit
func selectionText(prompt, command string, count int) string {
	if count <= config.MaxSelectionItems {
		return prompt
	}
	return prompt + "\n" + fmt.Sprintf(msgMoreActivities, config.MaxSelectionItems, command)
}

func notActive() []Reply {
	return []Reply{{Text: msgNotActive, Ephemeral: true}}
}
