package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/uptrace/bun"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id int64) (*models.Activity, error)
	// Delete removes the activity; its executions go with it through the
	// cascading foreign key.
	Delete(ctx context.Context, id int64) error
	ListByLeaderboard(ctx context.Context, leaderboardID int64) ([]*models.Activity, error)
	CountByLeaderboard(ctx context.Context, leaderboardID int64) (int, error)
}

type activityRepository struct {
	*BaseRepository
}

func NewActivityRepository(db *bun.DB) ActivityRepository {
	return &activityRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if activity.TimeCreated.IsZero() {
		activity.TimeCreated = time.Now()
	}

	_, err := r.Exec(ctx, "create", "activity", activity.Name, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(activity).
			Returning("id").
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	slog.Info("Activity created",
		slog.String("type", "db"),
		slog.Int64("activity_id", activity.ID),
		slog.Int64("leaderboard_id", activity.LeaderboardID),
		slog.String("activity", activity.Name),
		slog.Int("points", activity.Points))
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	activity := new(models.Activity)
	err := r.Select(ctx, "get", "activity", id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(activity).
			Where("a.id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.Exec(ctx, "delete", "activity", id, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.Activity)(nil)).
			Where("id = ?", id).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "activity", ID: id}
	}
	return nil
}

// ListByLeaderboard returns activities in creation order
func (r *activityRepository) ListByLeaderboard(ctx context.Context, leaderboardID int64) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := r.Select(ctx, "list", "activity", leaderboardID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&activities).
			Where("a.leaderboard_id = ?", leaderboardID).
			Order("a.time_created ASC", "a.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) CountByLeaderboard(ctx context.Context, leaderboardID int64) (int, error) {
	var count int
	err := r.Select(ctx, "count", "activity", leaderboardID, func(ctx context.Context) error {
		var err error
		count, err = r.db.NewSelect().
			Model((*models.Activity)(nil)).
			Where("a.leaderboard_id = ?", leaderboardID).
			Count(ctx)
		return err
	})
	return count, err
}
