package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/activityboard/activityboard/activityboard/database/repositories"
	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyName         = errors.New("activity name is empty")
	ErrDuplicateActivity = errors.New("activity already exists")
)

type Service interface {
	EnsureMembership(ctx context.Context, member Member) (Membership, error)
	RefreshUser(ctx context.Context, userID int64, name string) error
	Activities(ctx context.Context, leaderboardID int64) ([]Activity, error)
	FindActivityByName(ctx context.Context, leaderboardID int64, name string) (Activity, error)
	SimilarActivities(ctx context.Context, leaderboardID int64, query string, limit int) ([]Activity, error)
	CreateActivity(ctx context.Context, leaderboardID, authorID int64, name string, points int) (Activity, error)
	DeleteActivity(ctx context.Context, leaderboardID, activityID int64) (Activity, error)
	ExecuteActivity(ctx context.Context, member Member, activityID int64) (Performed, error)
	PerformedByUser(ctx context.Context, userID, leaderboardID int64, limit int) ([]Performed, error)
	CancelPerformed(ctx context.Context, userID, leaderboardID, performedID int64) (Performed, error)
	Score(ctx context.Context, leaderboardID int64) ([]ScoreEntry, error)
	Log(ctx context.Context, leaderboardID int64, limit int) ([]LogEntry, error)
}

type service struct {
	repository Repository
}

func NewService(repository Repository) *service {
	return &service{
		repository: repository,
	}
}

// EnsureMembership upserts the board and the user, then links them. Repeated
// calls only refresh names.
func (s *service) EnsureMembership(ctx context.Context, member Member) (Membership, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		board := &models.Leaderboard{ID: member.LeaderboardID, Name: member.LeaderboardName}
		if err := s.repository.UpsertLeaderboard(gctx, board); err != nil {
			return fmt.Errorf("failed to upsert leaderboard: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		user := &models.User{ID: member.UserID, Name: member.UserName}
		if err := s.repository.UpsertUser(gctx, user); err != nil {
			return fmt.Errorf("failed to upsert user: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Membership{}, err
	}

	participant, created, err := s.repository.EnsureParticipant(ctx, member.UserID, member.LeaderboardID)
	if err != nil {
		return Membership{}, fmt.Errorf("failed to ensure participant: %w", err)
	}
	return Membership{ParticipantID: participant.ID, Joined: created}, nil
}

// RefreshUser upserts the user alone, without joining any board
func (s *service) RefreshUser(ctx context.Context, userID int64, name string) error {
	if err := s.repository.UpsertUser(ctx, &models.User{ID: userID, Name: name}); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (s *service) Activities(ctx context.Context, leaderboardID int64) ([]Activity, error) {
	rows, err := s.repository.ListActivities(ctx, leaderboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	activities := make([]Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, toActivity(row))
	}
	return activities, nil
}

// FindActivityByName matches case-insensitively after trimming
func (s *service) FindActivityByName(ctx context.Context, leaderboardID int64, name string) (Activity, error) {
	activities, err := s.Activities(ctx, leaderboardID)
	if err != nil {
		return Activity{}, err
	}
	name = strings.TrimSpace(name)
	for _, a := range activities {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return Activity{}, ErrNotFound
}

type activitySource []Activity

func (a activitySource) Len() int {
	return len(a)
}

func (a activitySource) String(i int) string {
	return strings.ToLower(a[i].Name)
}

// SimilarActivities ranks the board's activities by fuzzy match against
// query. An empty query returns activities in creation order.
func (s *service) SimilarActivities(ctx context.Context, leaderboardID int64, query string, limit int) ([]Activity, error) {
	activities, err := s.Activities(ctx, leaderboardID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var result []Activity
	if query == "" {
		result = activities
	} else {
		matches := fuzzy.FindFrom(query, activitySource(activities))
		result = make([]Activity, 0, len(matches))
		for _, m := range matches {
			result = append(result, activities[m.Index])
		}
	}

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *service) CreateActivity(ctx context.Context, leaderboardID, authorID int64, name string, points int) (Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Activity{}, ErrEmptyName
	}

	if _, err := s.FindActivityByName(ctx, leaderboardID, name); err == nil {
		return Activity{}, ErrDuplicateActivity
	} else if !errors.Is(err, ErrNotFound) {
		return Activity{}, err
	}

	row := &models.Activity{
		LeaderboardID: leaderboardID,
		AuthorUserID:  authorID,
		Name:          name,
		Points:        points,
	}
	if err := s.repository.CreateActivity(ctx, row); err != nil {
		return Activity{}, fmt.Errorf("failed to create activity: %w", err)
	}
	return toActivity(row), nil
}

// DeleteActivity removes an activity of this board together with its history
func (s *service) DeleteActivity(ctx context.Context, leaderboardID, activityID int64) (Activity, error) {
	activity, err := s.boardActivity(ctx, leaderboardID, activityID)
	if err != nil {
		return Activity{}, err
	}
	if err := s.repository.DeleteActivity(ctx, activityID); err != nil {
		if repositories.IsNotFound(err) {
			return Activity{}, ErrNotFound
		}
		return Activity{}, fmt.Errorf("failed to delete activity: %w", err)
	}
	return activity, nil
}

func (s *service) ExecuteActivity(ctx context.Context, member Member, activityID int64) (Performed, error) {
	activity, err := s.boardActivity(ctx, member.LeaderboardID, activityID)
	if err != nil {
		return Performed{}, err
	}

	membership, err := s.EnsureMembership(ctx, member)
	if err != nil {
		return Performed{}, err
	}

	row := &models.PerformedActivity{
		ActivityID:    activity.ID,
		ParticipantID: membership.ParticipantID,
	}
	if err := s.repository.CreatePerformed(ctx, row); err != nil {
		return Performed{}, fmt.Errorf("failed to record activity: %w", err)
	}
	return Performed{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		Activity:      activity,
		PerformedAt:   row.PerformedAt,
	}, nil
}

// PerformedByUser lists the user's executions on the board, newest first
func (s *service) PerformedByUser(ctx context.Context, userID, leaderboardID int64, limit int) ([]Performed, error) {
	participant, err := s.repository.GetParticipant(ctx, userID, leaderboardID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	rows, err := s.repository.ListPerformed(ctx, participant.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list performed activities: %w", err)
	}
	performed := make([]Performed, 0, len(rows))
	for _, row := range rows {
		performed = append(performed, toPerformed(row))
	}
	return performed, nil
}

// CancelPerformed deletes one execution owned by the user on this board
func (s *service) CancelPerformed(ctx context.Context, userID, leaderboardID, performedID int64) (Performed, error) {
	participant, err := s.repository.GetParticipant(ctx, userID, leaderboardID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return Performed{}, ErrNotFound
		}
		return Performed{}, fmt.Errorf("failed to get participant: %w", err)
	}

	row, err := s.repository.GetPerformed(ctx, performedID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return Performed{}, ErrNotFound
		}
		return Performed{}, fmt.Errorf("failed to get performed activity: %w", err)
	}
	if row.ParticipantID != participant.ID {
		return Performed{}, ErrNotFound
	}

	if err := s.repository.DeletePerformed(ctx, performedID); err != nil {
		if repositories.IsNotFound(err) {
			return Performed{}, ErrNotFound
		}
		return Performed{}, fmt.Errorf("failed to delete performed activity: %w", err)
	}
	return toPerformed(row), nil
}

// Score returns every participant of the board, highest score first and
// alphabetical within a tie
func (s *service) Score(ctx context.Context, leaderboardID int64) ([]ScoreEntry, error) {
	rows, err := s.repository.Score(ctx, leaderboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute score: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ScoreEntry{UserID: row.UserID, Name: row.Name, Score: row.Score})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func (s *service) Log(ctx context.Context, leaderboardID int64, limit int) ([]LogEntry, error) {
	rows, err := s.repository.Log(ctx, leaderboardID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity log: %w", err)
	}

	entries := make([]LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LogEntry{
			PerformedID:  row.PerformedID,
			PerformedAt:  row.PerformedAt,
			UserID:       row.UserID,
			UserName:     row.UserName,
			ActivityName: row.ActivityName,
			Points:       row.Points,
		})
	}
	return entries, nil
}

// boardActivity loads an activity and hides ones that belong to another board
func (s *service) boardActivity(ctx context.Context, leaderboardID, activityID int64) (Activity, error) {
	row, err := s.repository.GetActivity(ctx, activityID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return Activity{}, ErrNotFound
		}
		return Activity{}, fmt.Errorf("failed to get activity: %w", err)
	}
	if row.LeaderboardID != leaderboardID {
		return Activity{}, ErrNotFound
	}
	return toActivity(row), nil
}

func toActivity(row *models.Activity) Activity {
	return Activity{
		ID:            row.ID,
		LeaderboardID: row.LeaderboardID,
		AuthorUserID:  row.AuthorUserID,
		Name:          row.Name,
		Points:        row.Points,
		CreatedAt:     row.TimeCreated,
	}
}

func toPerformed(row *models.PerformedActivity) Performed {
	p := Performed{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		PerformedAt:   row.PerformedAt,
	}
	if row.Activity != nil {
		p.Activity = toActivity(row.Activity)
	} else {
		p.Activity = Activity{ID: row.ActivityID}
	}
	return p
}
