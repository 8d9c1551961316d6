package repositories

import (
	"context"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/uptrace/bun"
)

// Store groups the repositories behind the single storage interface the
// leaderboard service consumes.
type Store struct {
	Users        UserRepository
	Leaderboards LeaderboardRepository
	Participants ParticipantRepository
	Activities   ActivityRepository
	Performed    PerformedActivityRepository
	Scores       ScoreRepository
}

func NewStore(db *bun.DB) *Store {
	return &Store{
		Users:        NewUserRepository(db),
		Leaderboards: NewLeaderboardRepository(db),
		Participants: NewParticipantRepository(db),
		Activities:   NewActivityRepository(db),
		Performed:    NewPerformedActivityRepository(db),
		Scores:       NewScoreRepository(db),
	}
}

func (s *Store) UpsertUser(ctx context.Context, user *models.User) error {
	return s.Users.Upsert(ctx, user)
}

func (s *Store) UpsertLeaderboard(ctx context.Context, board *models.Leaderboard) error {
	return s.Leaderboards.Upsert(ctx, board)
}

func (s *Store) EnsureParticipant(ctx context.Context, userID, leaderboardID int64) (*models.Participant, bool, error) {
	return s.Participants.Ensure(ctx, userID, leaderboardID)
}

func (s *Store) GetParticipant(ctx context.Context, userID, leaderboardID int64) (*models.Participant, error) {
	return s.Participants.Get(ctx, userID, leaderboardID)
}

func (s *Store) CreateActivity(ctx context.Context, activity *models.Activity) error {
	return s.Activities.Create(ctx, activity)
}

func (s *Store) GetActivity(ctx context.Context, id int64) (*models.Activity, error) {
	return s.Activities.GetByID(ctx, id)
}

func (s *Store) DeleteActivity(ctx context.Context, id int64) error {
	return s.Activities.Delete(ctx, id)
}

func (s *Store) ListActivities(ctx context.Context, leaderboardID int64) ([]*models.Activity, error) {
	return s.Activities.ListByLeaderboard(ctx, leaderboardID)
}

func (s *Store) CreatePerformed(ctx context.Context, performed *models.PerformedActivity) error {
	return s.Performed.Create(ctx, performed)
}

func (s *Store) GetPerformed(ctx context.Context, id int64) (*models.PerformedActivity, error) {
	return s.Performed.GetByID(ctx, id)
}

func (s *Store) DeletePerformed(ctx context.Context, id int64) error {
	return s.Performed.Delete(ctx, id)
}

func (s *Store) ListPerformed(ctx context.Context, participantID int64, limit int) ([]*models.PerformedActivity, error) {
	return s.Performed.ListByParticipant(ctx, participantID, limit)
}

func (s *Store) Score(ctx context.Context, leaderboardID int64) ([]models.ScoreRow, error) {
	return s.Scores.Score(ctx, leaderboardID)
}

func (s *Store) Log(ctx context.Context, leaderboardID int64, limit int) ([]models.LogEntry, error) {
	return s.Scores.Log(ctx, leaderboardID, limit)
}
