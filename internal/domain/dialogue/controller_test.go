package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/internal/domain/dialogue/mock"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
	"go.uber.org/mock/gomock"
)

var groupEvent = Event{ChatID: 1000, ChatName: "gym", Group: true, UserID: 1, UserName: "alice"}

var pushUps = leaderboard.Activity{ID: 10, LeaderboardID: 1000, AuthorUserID: 1, Name: "Push-ups", Points: 10}

// newController allows any number of user refreshes; flows that care about
// them use newStrictController
func newController(t *testing.T) (*Controller, *mock.MockService, *SessionStore) {
	t.Helper()
	c, svc, sessions := newStrictController(t)
	svc.EXPECT().RefreshUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return c, svc, sessions
}

func newStrictController(t *testing.T) (*Controller, *mock.MockService, *SessionStore) {
	t.Helper()
	svc := mock.NewMockService(gomock.NewController(t))
	sessions, err := NewSessionStore(16, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return NewController(svc, sessions), svc, sessions
}

func texts(replies []Reply) []string {
	out := make([]string, 0, len(replies))
	for _, r := range replies {
		out = append(out, r.Text)
	}
	return out
}

func assertTexts(t *testing.T, replies []Reply, want ...string) {
	t.Helper()
	got := texts(replies)
	if len(got) != len(want) {
		t.Fatalf("replies = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reply[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestController_Start(t *testing.T) {
	dm := groupEvent
	dm.Group = false

	tests := []struct {
		name       string
		ev         Event
		membership leaderboard.Membership
		activities []leaderboard.Activity
		want       []string
		wantState  State
	}{
		{
			name:       "new group member without activities",
			ev:         groupEvent,
			membership: leaderboard.Membership{ParticipantID: 7, Joined: true},
			want:       []string{msgStart, "alice was added to the Leaderboard gym", msgFirstActivity},
			wantState:  StateActivity,
		},
		{
			name:       "new direct chat member is not announced",
			ev:         dm,
			membership: leaderboard.Membership{ParticipantID: 7, Joined: true},
			want:       []string{msgStart, msgFirstActivity},
			wantState:  StateActivity,
		},
		{
			name:       "returning member with activities",
			ev:         groupEvent,
			membership: leaderboard.Membership{ParticipantID: 7},
			activities: []leaderboard.Activity{pushUps},
			want:       []string{msgStart, msgMenu},
			wantState:  StateIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, svc, sessions := newController(t)
			svc.EXPECT().EnsureMembership(gomock.Any(), tt.ev.member()).Return(tt.membership, nil)
			svc.EXPECT().Activities(gomock.Any(), tt.ev.ChatID).Return(tt.activities, nil)

			replies, err := c.Start(context.Background(), tt.ev)
			if err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			assertTexts(t, replies, tt.want...)
			if got := sessions.Get(tt.ev.ChatID, tt.ev.UserID).State; got != tt.wantState {
				t.Errorf("state = %v, want %v", got, tt.wantState)
			}
		})
	}
}

func TestController_AddActivityFlow(t *testing.T) {
	c, svc, sessions := newController(t)
	ctx := context.Background()
	sessions.Set(groupEvent.ChatID, groupEvent.UserID, Session{State: StateActivity})

	name := groupEvent
	name.Text = "  Push-ups "
	svc.EXPECT().FindActivityByName(gomock.Any(), int64(1000), "Push-ups").Return(leaderboard.Activity{}, leaderboard.ErrNotFound)

	replies, err := c.Text(ctx, name)
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "Ok. Activity Push-ups added", "How many points should I assign for Push-ups?")
	if s := sessions.Get(1000, 1); s.State != StatePoints || s.PendingActivityName != "Push-ups" {
		t.Fatalf("session after name = %+v", s)
	}

	// no CreateActivity expectation: a rejected value must not persist anything
	bad := groupEvent
	bad.Text = "ten"
	replies, err = c.Text(ctx, bad)
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "ten is not a number. Please enter number 😊")
	if s := sessions.Get(1000, 1); s.State != StatePoints {
		t.Fatalf("state after bad points = %v", s.State)
	}

	good := groupEvent
	good.Text = " 10 "
	svc.EXPECT().CreateActivity(gomock.Any(), int64(1000), int64(1), "Push-ups", 10).Return(pushUps, nil)
	replies, err = c.Text(ctx, good)
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "Ok. Activity Push-ups gives 10 points 😎", msgMenu)
	if len(replies[1].Buttons) != 6 {
		t.Errorf("menu buttons = %d", len(replies[1].Buttons))
	}
	if s := sessions.Get(1000, 1); s.State != StateIdle || s.PendingActivityName != "" {
		t.Errorf("session after points = %+v", s)
	}
}

func TestController_DuplicateName(t *testing.T) {
	c, svc, sessions := newController(t)
	sessions.Set(1000, 1, Session{State: StateActivity})

	ev := groupEvent
	ev.Text = "push-ups"
	svc.EXPECT().FindActivityByName(gomock.Any(), int64(1000), "push-ups").Return(pushUps, nil)
	svc.EXPECT().SimilarActivities(gomock.Any(), int64(1000), "push-ups", 3).Return([]leaderboard.Activity{pushUps}, nil)

	replies, err := c.Text(context.Background(), ev)
	if err != nil {
		t.Fatal(err)
	}
	if len(replies) != 1 || !strings.Contains(replies[0].Text, "already exists") || !strings.Contains(replies[0].Text, "Did you mean: Push-ups?") {
		t.Errorf("replies = %q", texts(replies))
	}
	if s := sessions.Get(1000, 1); s.State != StateActivity {
		t.Errorf("state = %v, want ACTIVITY", s.State)
	}
}

func TestController_TextOutsideDialogue(t *testing.T) {
	c, _, sessions := newController(t)
	ev := groupEvent
	ev.Text = "hello everyone"

	for _, state := range []State{StateNone, StateIdle, StateDelete} {
		sessions.Set(1000, 1, Session{State: state})
		replies, err := c.Text(context.Background(), ev)
		if err != nil || replies != nil {
			t.Errorf("state %v: replies = %v, err = %v", state, replies, err)
		}
		if c.AwaitsText(1000, 1) {
			t.Errorf("state %v should not await text", state)
		}
	}
}

func TestController_ButtonsRequireMatchingState(t *testing.T) {
	c, _, sessions := newController(t)
	ctx := context.Background()
	sessions.Set(1000, 1, Session{State: StateIdle})

	calls := []struct {
		name string
		call func() ([]Reply, error)
	}{
		{"execute", func() ([]Reply, error) { return c.SelectExecute(ctx, groupEvent, "0_10") }},
		{"delete", func() ([]Reply, error) { return c.SelectDelete(ctx, groupEvent, "0_10") }},
		{"cancel", func() ([]Reply, error) { return c.SelectCancel(ctx, groupEvent, "0_300") }},
	}
	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			replies, err := tt.call()
			if err != nil {
				t.Fatal(err)
			}
			if len(replies) != 1 || !replies[0].Ephemeral || replies[0].Text != msgNotActive {
				t.Errorf("replies = %+v", replies)
			}
		})
	}

	other := groupEvent
	other.UserID = 2
	replies, err := c.Menu(ctx, other, "0")
	if err != nil || len(replies) != 1 || !replies[0].Ephemeral {
		t.Errorf("menu press by another user = %+v, %v", replies, err)
	}
}

func TestController_ExecuteFlow(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		setup     func(svc *mock.MockService)
		want      string
		wantState State
	}{
		{
			name:    "records execution",
			payload: "0_10",
			setup: func(svc *mock.MockService) {
				svc.EXPECT().ExecuteActivity(gomock.Any(), groupEvent.member(), int64(10)).
					Return(leaderboard.Performed{ID: 300, Activity: pushUps}, nil)
			},
			want:      "alice performed Push-ups and got 10 points 💪",
			wantState: StateNone,
		},
		{
			name:      "cancel returns to menu",
			payload:   "-1",
			setup:     func(svc *mock.MockService) {},
			want:      msgMenu,
			wantState: StateIdle,
		},
		{
			name:    "activity deleted meanwhile",
			payload: "0_10",
			setup: func(svc *mock.MockService) {
				svc.EXPECT().ExecuteActivity(gomock.Any(), gomock.Any(), int64(10)).
					Return(leaderboard.Performed{}, leaderboard.ErrNotFound)
			},
			want:      msgGone,
			wantState: StateNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, svc, sessions := newController(t)
			sessions.Set(1000, 1, Session{State: StateIdle})
			svc.EXPECT().Activities(gomock.Any(), int64(1000)).Return([]leaderboard.Activity{pushUps}, nil)
			tt.setup(svc)

			replies, err := c.Menu(context.Background(), groupEvent, "0")
			if err != nil {
				t.Fatal(err)
			}
			if len(replies) != 1 || len(replies[0].Buttons) != 2 {
				t.Fatalf("execute prompt = %+v", replies)
			}
			if id := replies[0].Buttons[0].CustomID; id != "/execute/0_10" {
				t.Errorf("first button id = %q", id)
			}
			if id := replies[0].Buttons[1].CustomID; id != "/execute/-1" {
				t.Errorf("cancel button id = %q", id)
			}

			replies, err = c.SelectExecute(context.Background(), groupEvent, tt.payload)
			if err != nil {
				t.Fatal(err)
			}
			assertTexts(t, replies, tt.want)
			if got := sessions.Get(1000, 1).State; got != tt.wantState {
				t.Errorf("state = %v, want %v", got, tt.wantState)
			}
		})
	}
}

func TestController_ExecuteActivity_NoActivities(t *testing.T) {
	c, svc, sessions := newController(t)
	svc.EXPECT().EnsureMembership(gomock.Any(), gomock.Any()).Return(leaderboard.Membership{ParticipantID: 7}, nil)
	svc.EXPECT().Activities(gomock.Any(), int64(1000)).Return(nil, nil)

	replies, err := c.ExecuteActivity(context.Background(), groupEvent, "")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, msgNoActivities)
	if got := sessions.Get(1000, 1).State; got != StateNone {
		t.Errorf("state = %v", got)
	}
}

func TestController_ExecuteActivity_ByName(t *testing.T) {
	c, svc, _ := newController(t)
	svc.EXPECT().EnsureMembership(gomock.Any(), gomock.Any()).Return(leaderboard.Membership{ParticipantID: 7}, nil).Times(2)
	svc.EXPECT().FindActivityByName(gomock.Any(), int64(1000), "Pushups").Return(leaderboard.Activity{}, leaderboard.ErrNotFound)
	svc.EXPECT().SimilarActivities(gomock.Any(), int64(1000), "Pushups", 3).Return([]leaderboard.Activity{pushUps}, nil)
	svc.EXPECT().FindActivityByName(gomock.Any(), int64(1000), "push-ups").Return(pushUps, nil)
	svc.EXPECT().ExecuteActivity(gomock.Any(), gomock.Any(), int64(10)).Return(leaderboard.Performed{ID: 1, Activity: pushUps}, nil)

	replies, err := c.ExecuteActivity(context.Background(), groupEvent, "Pushups")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "Activity Pushups not found\nDid you mean: Push-ups?")

	replies, err = c.ExecuteActivity(context.Background(), groupEvent, " push-ups ")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "alice performed Push-ups and got 10 points 💪")
}

func TestController_DeleteFlow(t *testing.T) {
	c, svc, sessions := newController(t)
	ctx := context.Background()
	svc.EXPECT().EnsureMembership(gomock.Any(), gomock.Any()).Return(leaderboard.Membership{ParticipantID: 7}, nil)
	svc.EXPECT().Activities(gomock.Any(), int64(1000)).Return([]leaderboard.Activity{pushUps}, nil)
	svc.EXPECT().DeleteActivity(gomock.Any(), int64(1000), int64(10)).Return(pushUps, nil)

	replies, err := c.DeleteActivity(ctx, groupEvent, "")
	if err != nil {
		t.Fatal(err)
	}
	if replies[0].Buttons[0].CustomID != "/delete/0_10" {
		t.Errorf("delete button id = %q", replies[0].Buttons[0].CustomID)
	}
	if got := sessions.Get(1000, 1).State; got != StateDelete {
		t.Fatalf("state = %v", got)
	}

	replies, err = c.SelectDelete(ctx, groupEvent, "0_10")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "Activity Push-ups was deleted ❌")
	if got := sessions.Get(1000, 1).State; got != StateNone {
		t.Errorf("state = %v", got)
	}
}

func TestController_DeleteActivity_LongList(t *testing.T) {
	c, svc, sessions := newController(t)
	ctx := context.Background()

	activities := make([]leaderboard.Activity, 30)
	for i := range activities {
		activities[i] = leaderboard.Activity{ID: int64(100 + i), LeaderboardID: 1000, Name: fmt.Sprintf("Activity %d", i+1), Points: i + 1}
	}
	last := activities[29]

	svc.EXPECT().EnsureMembership(gomock.Any(), gomock.Any()).Return(leaderboard.Membership{ParticipantID: 7}, nil).Times(2)
	svc.EXPECT().Activities(gomock.Any(), int64(1000)).Return(activities, nil)
	svc.EXPECT().FindActivityByName(gomock.Any(), int64(1000), "Activity 30").Return(last, nil)
	svc.EXPECT().DeleteActivity(gomock.Any(), int64(1000), last.ID).Return(last, nil)

	replies, err := c.DeleteActivity(ctx, groupEvent, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(replies[0].Buttons); got != config.MaxSelectionItems+1 {
		t.Errorf("buttons = %d, want %d", got, config.MaxSelectionItems+1)
	}
	if !strings.Contains(replies[0].Text, "/delete_activity") {
		t.Errorf("prompt does not point at the name option: %q", replies[0].Text)
	}

	replies, err = c.DeleteActivity(ctx, groupEvent, " Activity 30 ")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "Activity Activity 30 was deleted ❌")
	if got := sessions.Get(1000, 1).State; got != StateNone {
		t.Errorf("state = %v", got)
	}
}

func TestController_DeleteActivity_UnknownName(t *testing.T) {
	c, svc, _ := newController(t)
	svc.EXPECT().EnsureMembership(gomock.Any(), gomock.Any()).Return(leaderboard.Membership{ParticipantID: 7}, nil)
	svc.EXPECT().FindActivityByName(gomock.Any(), int64(1000), "Pushups").Return(leaderboard.Activity{}, leaderboard.ErrNotFound)
	svc.EXPECT().SimilarActivities(gomock.Any(), int64(1000), "Pushups", 3).Return(nil, nil)

	replies, err := c.DeleteActivity(context.Background(), groupEvent, "Pushups")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "Activity Pushups not found")
}

func TestController_RefreshesUserName(t *testing.T) {
	renamed := groupEvent
	renamed.UserName = "alice2"

	tests := []struct {
		name  string
		state State
		setup func(svc *mock.MockService)
		call  func(c *Controller) ([]Reply, error)
	}{
		{
			name: "show score",
			setup: func(svc *mock.MockService) {
				svc.EXPECT().Score(gomock.Any(), int64(1000)).Return(nil, nil)
			},
			call: func(c *Controller) ([]Reply, error) { return c.ShowScore(context.Background(), renamed) },
		},
		{
			name: "show activities",
			setup: func(svc *mock.MockService) {
				svc.EXPECT().Activities(gomock.Any(), int64(1000)).Return(nil, nil)
			},
			call: func(c *Controller) ([]Reply, error) { return c.ShowActivities(context.Background(), renamed) },
		},
		{
			name: "show log",
			setup: func(svc *mock.MockService) {
				svc.EXPECT().Log(gomock.Any(), int64(1000), config.LogEntriesLimit).Return(nil, nil)
			},
			call: func(c *Controller) ([]Reply, error) { return c.ShowLog(context.Background(), renamed) },
		},
		{
			name: "cancel activity",
			setup: func(svc *mock.MockService) {
				svc.EXPECT().PerformedByUser(gomock.Any(), int64(1), int64(1000), config.RecentPerformedLimit).Return(nil, nil)
			},
			call: func(c *Controller) ([]Reply, error) { return c.CancelActivity(context.Background(), renamed) },
		},
		{
			name:  "menu press",
			state: StateIdle,
			setup: func(svc *mock.MockService) {},
			call:  func(c *Controller) ([]Reply, error) { return c.Menu(context.Background(), renamed, "5") },
		},
		{
			name:  "selection cancel",
			state: StateDelete,
			setup: func(svc *mock.MockService) {},
			call:  func(c *Controller) ([]Reply, error) { return c.SelectDelete(context.Background(), renamed, "-1") },
		},
		{
			name:  "conversation cancel",
			setup: func(svc *mock.MockService) {},
			call:  func(c *Controller) ([]Reply, error) { return c.Cancel(context.Background(), renamed) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, svc, sessions := newStrictController(t)
			if tt.state != StateNone {
				sessions.Set(1000, 1, Session{State: tt.state})
			}
			svc.EXPECT().RefreshUser(gomock.Any(), int64(1), "alice2").Return(nil)
			tt.setup(svc)

			if _, err := tt.call(c); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestController_RefreshFailureStopsRead(t *testing.T) {
	c, svc, _ := newStrictController(t)
	svc.EXPECT().RefreshUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	if _, err := c.ShowScore(context.Background(), groupEvent); err == nil {
		t.Error("ShowScore() error = nil, want refresh error")
	}
}

func TestController_DeleteWithoutActivities(t *testing.T) {
	c, svc, sessions := newController(t)
	sessions.Set(1000, 1, Session{State: StateIdle})
	svc.EXPECT().Activities(gomock.Any(), int64(1000)).Return(nil, nil)

	replies, err := c.Menu(context.Background(), groupEvent, "2")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, msgNoActivitiesLeft, msgMenu)
}

func TestController_CancelPerformedFlow(t *testing.T) {
	c, svc, sessions := newController(t)
	ctx := context.Background()
	performedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().PerformedByUser(gomock.Any(), int64(1), int64(1000), 10).Return([]leaderboard.Performed{
		{ID: 301, Activity: pushUps, PerformedAt: performedAt.Add(time.Hour)},
		{ID: 300, Activity: pushUps, PerformedAt: performedAt},
	}, nil)
	svc.EXPECT().CancelPerformed(gomock.Any(), int64(1), int64(1000), int64(300)).
		Return(leaderboard.Performed{ID: 300, Activity: pushUps}, nil)

	replies, err := c.CancelActivity(ctx, groupEvent)
	if err != nil {
		t.Fatal(err)
	}
	buttons := replies[0].Buttons
	if len(buttons) != 3 || buttons[1].CustomID != "/cancel-performed/1_300" || buttons[2].CustomID != "/cancel-performed/-1" {
		t.Fatalf("buttons = %+v", buttons)
	}
	if got := sessions.Get(1000, 1).State; got != StateCancel {
		t.Fatalf("state = %v", got)
	}

	replies, err = c.SelectCancel(ctx, groupEvent, "1_300")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, "Push-ups canceled, 10 points removed from alice ↩️")
}

func TestController_MenuShowScore(t *testing.T) {
	c, svc, sessions := newController(t)
	sessions.Set(1000, 1, Session{State: StateIdle})
	scores := []leaderboard.ScoreEntry{{UserID: 1, Name: "A", Score: 20}, {UserID: 2, Name: "B", Score: 10}}
	svc.EXPECT().Score(gomock.Any(), int64(1000)).Return(scores, nil)

	replies, err := c.Menu(context.Background(), groupEvent, "3")
	if err != nil {
		t.Fatal(err)
	}
	if len(replies) != 2 || len(replies[0].Scores) != 2 || replies[1].Text != msgMenu {
		t.Fatalf("replies = %+v", replies)
	}
	if !strings.Contains(replies[0].Text, "🥇 \x1b[32mA\x1b[0m") {
		t.Errorf("scoreboard text = %q", replies[0].Text)
	}
	if got := sessions.Get(1000, 1).State; got != StateIdle {
		t.Errorf("state = %v", got)
	}
}

func TestController_Cancel(t *testing.T) {
	c, _, sessions := newController(t)
	sessions.Set(1000, 1, Session{State: StateIdle})

	replies, err := c.Menu(context.Background(), groupEvent, "9")
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, msgMenu)

	sessions.Set(1000, 1, Session{State: StatePoints, PendingActivityName: "Push-ups"})

	replies, err = c.Cancel(context.Background(), groupEvent)
	if err != nil {
		t.Fatal(err)
	}
	assertTexts(t, replies, msgBye)
	if got := sessions.Get(1000, 1); got.State != StateNone || got.PendingActivityName != "" {
		t.Errorf("session = %+v", got)
	}
}
