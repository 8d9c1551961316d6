package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/uptrace/bun"
)

type ParticipantRepository interface {
	// Ensure returns the participant linking user and board, creating it on
	// first use. created reports whether this call inserted the row.
	Ensure(ctx context.Context, userID, leaderboardID int64) (participant *models.Participant, created bool, err error)
	Get(ctx context.Context, userID, leaderboardID int64) (*models.Participant, error)
	GetByID(ctx context.Context, id int64) (*models.Participant, error)
}

type participantRepository struct {
	*BaseRepository
}

func NewParticipantRepository(db *bun.DB) ParticipantRepository {
	return &participantRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *participantRepository) Ensure(ctx context.Context, userID, leaderboardID int64) (*models.Participant, bool, error) {
	key := fmt.Sprintf("%d/%d", userID, leaderboardID)
	participant := &models.Participant{UserID: userID, LeaderboardID: leaderboardID}

	affected, err := r.Exec(ctx, "ensure", "participant", key, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(participant).
			On("CONFLICT (user_id, leaderboard_id) DO NOTHING").
			Exec(ctx)
	})
	if err != nil {
		return nil, false, err
	}

	existing, err := r.Get(ctx, userID, leaderboardID)
	if err != nil {
		return nil, false, err
	}

	if affected > 0 {
		slog.Info("Participant joined leaderboard",
			slog.String("type", "db"),
			slog.Int64("user_id", userID),
			slog.Int64("leaderboard_id", leaderboardID))
	}
	return existing, affected > 0, nil
}

func (r *participantRepository) Get(ctx context.Context, userID, leaderboardID int64) (*models.Participant, error) {
	participant := new(models.Participant)
	err := r.Select(ctx, "get", "participant", fmt.Sprintf("%d/%d", userID, leaderboardID), func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(participant).
			Where("p.user_id = ?", userID).
			Where("p.leaderboard_id = ?", leaderboardID).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}

func (r *participantRepository) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	participant := new(models.Participant)
	err := r.Select(ctx, "get", "participant", id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(participant).
			Relation("User").
			Where("p.id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}
