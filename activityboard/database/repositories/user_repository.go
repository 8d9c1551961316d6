package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

// Upsert creates the user or renames it in place; users can change their
// display name between interactions.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.Exec(ctx, "upsert", "user", user.ID, func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(user).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	slog.Debug("User upserted",
		slog.String("type", "db"),
		slog.Int64("user_id", user.ID),
		slog.String("user_name", user.Name))
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.Select(ctx, "get", "user", id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(user).
			Where("u.id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
