package models

import "time"

// ScoreRow is one line of a leaderboard's scoreboard
type ScoreRow struct {
	UserID int64  `bun:"user_id"`
	Name   string `bun:"name"`
	Score  int64  `bun:"score"`
}

// LogEntry is one execution in a leaderboard's activity log
type LogEntry struct {
	PerformedID  int64     `bun:"performed_id"`
	PerformedAt  time.Time `bun:"performed_at"`
	UserID       int64     `bun:"user_id"`
	UserName     string    `bun:"user_name"`
	ActivityID   int64     `bun:"activity_id"`
	ActivityName string    `bun:"activity_name"`
	Points       int       `bun:"points"`
}
