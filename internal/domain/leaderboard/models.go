package leaderboard

import "time"

// Member identifies a user acting inside a chat. Names are refreshed on
// every interaction.
type Member struct {
	LeaderboardID   int64
	LeaderboardName string
	UserID          int64
	UserName        string
}

type Membership struct {
	ParticipantID int64
	// Joined is set when this call created the participant
	Joined bool
}

type Activity struct {
	ID            int64
	LeaderboardID int64
	AuthorUserID  int64
	Name          string
	Points        int
	CreatedAt     time.Time
}

// Performed is one execution of an activity by a participant
type Performed struct {
	ID            int64
	ParticipantID int64
	Activity      Activity
	PerformedAt   time.Time
}

type ScoreEntry struct {
	UserID int64
	Name   string
	Score  int64
}

type LogEntry struct {
	PerformedID  int64
	PerformedAt  time.Time
	UserID       int64
	UserName     string
	ActivityName string
	Points       int
}
