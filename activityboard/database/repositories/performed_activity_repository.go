package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/uptrace/bun"
)

type PerformedActivityRepository interface {
	Create(ctx context.Context, performed *models.PerformedActivity) error
	GetByID(ctx context.Context, id int64) (*models.PerformedActivity, error)
	Delete(ctx context.Context, id int64) error
	// ListByParticipant returns the newest executions first with their activity loaded
	ListByParticipant(ctx context.Context, participantID int64, limit int) ([]*models.PerformedActivity, error)
}

type performedActivityRepository struct {
	*BaseRepository
}

func NewPerformedActivityRepository(db *bun.DB) PerformedActivityRepository {
	return &performedActivityRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *performedActivityRepository) Create(ctx context.Context, performed *models.PerformedActivity) error {
	if performed.PerformedAt.IsZero() {
		performed.PerformedAt = time.Now()
	}

	_, err := r.Exec(ctx, "create", "performed_activity", performed.ActivityID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(performed).
			Returning("id").
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	slog.Info("Activity performed",
		slog.String("type", "db"),
		slog.Int64("performed_id", performed.ID),
		slog.Int64("activity_id", performed.ActivityID),
		slog.Int64("participant_id", performed.ParticipantID))
	return nil
}

func (r *performedActivityRepository) GetByID(ctx context.Context, id int64) (*models.PerformedActivity, error) {
	performed := new(models.PerformedActivity)
	err := r.Select(ctx, "get", "performed_activity", id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(performed).
			Relation("Activity").
			Where("pa.id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return performed, nil
}

func (r *performedActivityRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.Exec(ctx, "delete", "performed_activity", id, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewDelete().
			Model((*models.PerformedActivity)(nil)).
			Where("id = ?", id).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "performed_activity", ID: id}
	}
	return nil
}

func (r *performedActivityRepository) ListByParticipant(ctx context.Context, participantID int64, limit int) ([]*models.PerformedActivity, error) {
	var performed []*models.PerformedActivity
	err := r.Select(ctx, "list", "performed_activity", participantID, func(ctx context.Context) error {
		q := r.db.NewSelect().
			Model(&performed).
			Relation("Activity").
			Where("pa.participant_id = ?", participantID).
			Order("pa.performed_at DESC", "pa.id DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return performed, nil
}
