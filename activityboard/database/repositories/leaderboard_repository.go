package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/uptrace/bun"
)

type LeaderboardRepository interface {
	Upsert(ctx context.Context, board *models.Leaderboard) error
	GetByID(ctx context.Context, id int64) (*models.Leaderboard, error)
}

type leaderboardRepository struct {
	*BaseRepository
}

func NewLeaderboardRepository(db *bun.DB) LeaderboardRepository {
	return &leaderboardRepository{BaseRepository: NewBaseRepository(db)}
}

// Upsert keeps the board name in sync with the chat title
func (r *leaderboardRepository) Upsert(ctx context.Context, board *models.Leaderboard) error {
	now := time.Now()
	if board.CreatedAt.IsZero() {
		board.CreatedAt = now
	}
	board.UpdatedAt = now

	_, err := r.Exec(ctx, "upsert", "leaderboard", board.ID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(board).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	slog.Debug("Leaderboard upserted",
		slog.String("type", "db"),
		slog.Int64("leaderboard_id", board.ID),
		slog.String("name", board.Name))
	return nil
}

func (r *leaderboardRepository) GetByID(ctx context.Context, id int64) (*models.Leaderboard, error) {
	board := new(models.Leaderboard)
	err := r.Select(ctx, "get", "leaderboard", id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(board).
			Where("l.id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}
