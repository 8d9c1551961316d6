package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Leaderboard is the scoring scope of one conversation; ID is the chat id
type Leaderboard struct {
	bun.BaseModel `bun:"table:leaderboards,alias:l"`

	ID        int64     `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
