package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Activity struct {
	bun.BaseModel `bun:"table:activities,alias:a"`

	ID            int64     `bun:"id,pk,autoincrement"`
	LeaderboardID int64     `bun:"leaderboard_id,notnull"`
	AuthorUserID  int64     `bun:"author_user_id,notnull"`
	Name          string    `bun:"activity_name,notnull"`
	Points        int       `bun:"points,notnull"`
	TimeCreated   time.Time `bun:"time_created,nullzero,notnull,default:current_timestamp"`
}
