package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PerformedActivity records one execution of an activity by a participant.
// Rows are owned by their activity and go away with it.
type PerformedActivity struct {
	bun.BaseModel `bun:"table:performed_activity,alias:pa"`

	ID            int64     `bun:"id,pk,autoincrement"`
	ActivityID    int64     `bun:"activity_id,notnull"`
	ParticipantID int64     `bun:"participant_id,notnull"`
	PerformedAt   time.Time `bun:"performed_at,nullzero,notnull,default:current_timestamp"`

	Activity    *Activity    `bun:"rel:belongs-to,join:activity_id=id"`
	Participant *Participant `bun:"rel:belongs-to,join:participant_id=id"`
}
