package repositories

import (
	"context"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/uptrace/bun"
)

type ScoreRepository interface {
	// Score sums points per participant. Members with no executions score 0.
	Score(ctx context.Context, leaderboardID int64) ([]models.ScoreRow, error)
	// Log lists executions on the board, newest first
	Log(ctx context.Context, leaderboardID int64, limit int) ([]models.LogEntry, error)
}

type scoreRepository struct {
	*BaseRepository
}

func NewScoreRepository(db *bun.DB) ScoreRepository {
	return &scoreRepository{BaseRepository: NewBaseRepository(db)}
}

const scoreQuery = `
SELECT u.id AS user_id, u.name AS name, COALESCE(SUM(a.points), 0) AS score
FROM participants p
JOIN users u ON u.id = p.user_id
LEFT JOIN performed_activity pa ON pa.participant_id = p.id
LEFT JOIN activities a ON a.id = pa.activity_id
WHERE p.leaderboard_id = ?
GROUP BY u.id, u.name
ORDER BY score DESC, u.name ASC`

const logQuery = `
SELECT pa.id AS performed_id, pa.performed_at, u.id AS user_id, u.name AS user_name,
	a.id AS activity_id, a.activity_name, a.points
FROM performed_activity pa
JOIN participants p ON p.id = pa.participant_id
JOIN users u ON u.id = p.user_id
JOIN activities a ON a.id = pa.activity_id
WHERE p.leaderboard_id = ?
ORDER BY pa.performed_at DESC, pa.id DESC
LIMIT ?`

func (r *scoreRepository) Score(ctx context.Context, leaderboardID int64) ([]models.ScoreRow, error) {
	var rows []models.ScoreRow
	err := r.Select(ctx, "score", "leaderboard", leaderboardID, func(ctx context.Context) error {
		return r.db.NewRaw(scoreQuery, leaderboardID).Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *scoreRepository) Log(ctx context.Context, leaderboardID int64, limit int) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	err := r.Select(ctx, "log", "leaderboard", leaderboardID, func(ctx context.Context) error {
		return r.db.NewRaw(logQuery, leaderboardID, limit).Scan(ctx, &entries)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
