package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:p"`

	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,notnull,unique:participants_user_leaderboard"`
	LeaderboardID int64     `bun:"leaderboard_id,notnull,unique:participants_user_leaderboard"`
	JoinedAt      time.Time `bun:"joined_at,nullzero,notnull,default:current_timestamp"`

	User *User `bun:"rel:belongs-to,join:user_id=id"`
}
