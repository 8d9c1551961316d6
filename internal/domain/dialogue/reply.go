package dialogue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
)

// Event is an inbound chat event with the transport details stripped
type Event struct {
	ChatID   int64
	ChatName string
	// Group is false for direct messages
	Group    bool
	UserID   int64
	UserName string
	Text     string
}

func (e Event) member() leaderboard.Member {
	return leaderboard.Member{
		LeaderboardID:   e.ChatID,
		LeaderboardName: e.ChatName,
		UserID:          e.UserID,
		UserName:        e.UserName,
	}
}

type ButtonStyle int

const (
	ButtonPrimary ButtonStyle = iota
	ButtonSecondary
	ButtonDanger
)

type Button struct {
	Label    string
	CustomID string
	Style    ButtonStyle
}

// Reply is one outbound message. Scores and Log carry the raw rows next to
// the rendered text so the transport can page or draw them.
type Reply struct {
	Text      string
	Buttons   []Button
	Ephemeral bool
	Scores    []leaderboard.ScoreEntry
	Log       []leaderboard.LogEntry
}

// Component custom id prefixes
const (
	MenuPrefix            = "/menu/"
	ExecutePrefix         = "/execute/"
	DeletePrefix          = "/delete/"
	CancelPerformedPrefix = "/cancel-performed/"
)

type MenuChoice int

const (
	MenuExecute MenuChoice = iota
	MenuAdd
	MenuDelete
	MenuShowScore
	MenuShowLog
	MenuEnd
)

var menuLabels = []string{
	MenuExecute:   "▶️ Execute Activity",
	MenuAdd:       "➕ Add Activity",
	MenuDelete:    "➖ Delete Activity",
	MenuShowScore: "🏆 Show Score",
	MenuShowLog:   "📜 Show Log",
	MenuEnd:       "⏹ End",
}

func (c MenuChoice) Label() string {
	if c < 0 || int(c) >= len(menuLabels) {
		return ""
	}
	return menuLabels[c]
}

func menuButtons() []Button {
	buttons := make([]Button, 0, len(menuLabels))
	for i, label := range menuLabels {
		style := ButtonPrimary
		if MenuChoice(i) == MenuEnd {
			style = ButtonDanger
		}
		buttons = append(buttons, Button{
			Label:    label,
			CustomID: MenuPrefix + strconv.Itoa(i),
			Style:    style,
		})
	}
	return buttons
}

// selectionID encodes a list entry as index_entityId
func selectionID(prefix string, index int, entityID int64) string {
	return fmt.Sprintf("%s%d_%d", prefix, index, entityID)
}

func cancelButton(prefix string) Button {
	return Button{Label: "✖️ Cancel", CustomID: prefix + config.CancelPayload, Style: ButtonDanger}
}

// ParseSelection decodes a selection payload. cancel is set for the
// reserved cancel payload.
func ParseSelection(payload string) (entityID int64, cancel bool, err error) {
	if payload == config.CancelPayload {
		return 0, true, nil
	}
	index, id, found := strings.Cut(payload, "_")
	if !found {
		return 0, false, fmt.Errorf("malformed selection %q", payload)
	}
	if _, err := strconv.Atoi(index); err != nil {
		return 0, false, fmt.Errorf("malformed selection index %q: %w", payload, err)
	}
	entityID, err = strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("malformed selection id %q: %w", payload, err)
	}
	return entityID, false, nil
}

func text(format string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(format, args...)}
}
