package leaderboard

import (
	"context"

	"github.com/activityboard/activityboard/activityboard/database/models"
)

// Repository is the storage the service runs on. It reuses the database
// models; the service converts them before they leave the package.
type Repository interface {
	UpsertUser(ctx context.Context, user *models.User) error
	UpsertLeaderboard(ctx context.Context, board *models.Leaderboard) error
	EnsureParticipant(ctx context.Context, userID, leaderboardID int64) (*models.Participant, bool, error)
	GetParticipant(ctx context.Context, userID, leaderboardID int64) (*models.Participant, error)

	CreateActivity(ctx context.Context, activity *models.Activity) error
	GetActivity(ctx context.Context, id int64) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
	ListActivities(ctx context.Context, leaderboardID int64) ([]*models.Activity, error)

	CreatePerformed(ctx context.Context, performed *models.PerformedActivity) error
	GetPerformed(ctx context.Context, id int64) (*models.PerformedActivity, error)
	DeletePerformed(ctx context.Context, id int64) error
	ListPerformed(ctx context.Context, participantID int64, limit int) ([]*models.PerformedActivity, error)

	Score(ctx context.Context, leaderboardID int64) ([]models.ScoreRow, error)
	Log(ctx context.Context, leaderboardID int64, limit int) ([]models.LogEntry, error)
}
