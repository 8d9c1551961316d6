package leaderboard

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/activityboard/activityboard/activityboard/database/models"
	"github.com/activityboard/activityboard/activityboard/database/repositories"
	"github.com/activityboard/activityboard/internal/domain/leaderboard/mock"
	"go.uber.org/mock/gomock"
)

var member = Member{
	LeaderboardID:   mock.BoardID,
	LeaderboardName: "gym",
	UserID:          mock.UserA,
	UserName:        "alice",
}

func newService(t *testing.T) (*service, *mock.MockRepository) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	return NewService(repo), repo
}

func Test_service_EnsureMembership(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *mock.MockRepository)
		want    Membership
		wantErr bool
	}{
		{
			name: "first start joins",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().UpsertLeaderboard(gomock.Any(), &models.Leaderboard{ID: mock.BoardID, Name: "gym"}).Return(nil)
				repo.EXPECT().UpsertUser(gomock.Any(), &models.User{ID: mock.UserA, Name: "alice"}).Return(nil)
				repo.EXPECT().EnsureParticipant(gomock.Any(), mock.UserA, mock.BoardID).
					Return(&models.Participant{ID: 7, UserID: mock.UserA, LeaderboardID: mock.BoardID}, true, nil)
			},
			want: Membership{ParticipantID: 7, Joined: true},
		},
		{
			name: "repeated start only refreshes",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().UpsertLeaderboard(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().EnsureParticipant(gomock.Any(), mock.UserA, mock.BoardID).
					Return(&models.Participant{ID: 7}, false, nil)
			},
			want: Membership{ParticipantID: 7},
		},
		{
			name: "user upsert fails",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().UpsertLeaderboard(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				repo.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			tt.setup(repo)

			got, err := s.EnsureMembership(context.Background(), member)
			if (err != nil) != tt.wantErr {
				t.Fatalf("service.EnsureMembership() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("service.EnsureMembership() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_service_RefreshUser(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "renamed user is stored", err: nil},
		{name: "repository failure", err: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			repo.EXPECT().UpsertUser(gomock.Any(), &models.User{ID: mock.UserA, Name: "alice2"}).Return(tt.err)

			err := s.RefreshUser(context.Background(), mock.UserA, "alice2")
			if (err != nil) != tt.wantErr {
				t.Errorf("RefreshUser() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_service_CreateActivity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		points   int
		setup    func(repo *mock.MockRepository)
		wantName string
		wantErr  error
	}{
		{
			name:   "creates trimmed name",
			input:  "  Squats ",
			points: 5,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().ListActivities(gomock.Any(), mock.BoardID).Return(mock.Activities, nil)
				repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *models.Activity) error {
						if a.Name != "Squats" || a.Points != 5 || a.AuthorUserID != mock.UserA {
							t.Errorf("unexpected activity %+v", a)
						}
						a.ID = 42
						return nil
					})
			},
			wantName: "Squats",
		},
		{
			name:    "empty name",
			input:   "   ",
			setup:   func(repo *mock.MockRepository) {},
			wantErr: ErrEmptyName,
		},
		{
			name:   "duplicate ignores case",
			input:  "push-UPS",
			points: 1,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().ListActivities(gomock.Any(), mock.BoardID).Return(mock.Activities, nil)
			},
			wantErr: ErrDuplicateActivity,
		},
		{
			name:   "negative points allowed",
			input:  "Skipping leg day",
			points: -10,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().ListActivities(gomock.Any(), mock.BoardID).Return(nil, nil)
				repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantName: "Skipping leg day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			tt.setup(repo)

			got, err := s.CreateActivity(context.Background(), mock.BoardID, mock.UserA, tt.input, tt.points)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("service.CreateActivity() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && (got.Name != tt.wantName || got.Points != tt.points) {
				t.Errorf("service.CreateActivity() = %+v", got)
			}
		})
	}
}

func Test_service_SimilarActivities(t *testing.T) {
	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{name: "empty query keeps order", query: "", want: []string{"Push-ups", "Running", "Pull-ups"}},
		{name: "limit applies", query: "", limit: 2, want: []string{"Push-ups", "Running"}},
		{name: "no match", query: "xyz", want: []string{}},
		{name: "case insensitive", query: "RUN", want: []string{"Running"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			repo.EXPECT().ListActivities(gomock.Any(), mock.BoardID).Return(mock.Activities, nil)

			got, err := s.SimilarActivities(context.Background(), mock.BoardID, tt.query, tt.limit)
			if err != nil {
				t.Fatalf("service.SimilarActivities() error = %v", err)
			}
			names := []string{}
			for _, a := range got {
				names = append(names, a.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("service.SimilarActivities() = %v, want %v", names, tt.want)
			}
		})
	}
}

func Test_service_DeleteActivity(t *testing.T) {
	tests := []struct {
		name       string
		activityID int64
		setup      func(repo *mock.MockRepository)
		wantErr    error
	}{
		{
			name:       "deletes own board activity",
			activityID: 10,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetActivity(gomock.Any(), int64(10)).Return(mock.Activities[0], nil)
				repo.EXPECT().DeleteActivity(gomock.Any(), int64(10)).Return(nil)
			},
		},
		{
			name:       "other board is hidden",
			activityID: mock.ForeignActivity.ID,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetActivity(gomock.Any(), mock.ForeignActivity.ID).Return(mock.ForeignActivity, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "already gone",
			activityID: 55,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetActivity(gomock.Any(), int64(55)).
					Return(nil, &repositories.NotFoundError{Entity: "activity", ID: int64(55)})
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			tt.setup(repo)

			_, err := s.DeleteActivity(context.Background(), mock.BoardID, tt.activityID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("service.DeleteActivity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func Test_service_ExecuteActivity(t *testing.T) {
	s, repo := newService(t)
	repo.EXPECT().GetActivity(gomock.Any(), int64(10)).Return(mock.Activities[0], nil)
	repo.EXPECT().UpsertLeaderboard(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().EnsureParticipant(gomock.Any(), mock.UserA, mock.BoardID).Return(&models.Participant{ID: 7}, false, nil)
	repo.EXPECT().CreatePerformed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.PerformedActivity) error {
			if p.ActivityID != 10 || p.ParticipantID != 7 {
				t.Errorf("unexpected performed activity %+v", p)
			}
			p.ID = 300
			return nil
		})

	got, err := s.ExecuteActivity(context.Background(), member, 10)
	if err != nil {
		t.Fatalf("service.ExecuteActivity() error = %v", err)
	}
	if got.ID != 300 || got.Activity.Name != "Push-ups" || got.Activity.Points != 10 {
		t.Errorf("service.ExecuteActivity() = %+v", got)
	}
}

func Test_service_CancelPerformed(t *testing.T) {
	owned := &models.PerformedActivity{ID: 300, ActivityID: 10, ParticipantID: 7, Activity: mock.Activities[0]}
	foreign := &models.PerformedActivity{ID: 301, ActivityID: 10, ParticipantID: 8, Activity: mock.Activities[0]}

	tests := []struct {
		name        string
		performedID int64
		setup       func(repo *mock.MockRepository)
		wantErr     error
	}{
		{
			name:        "removes own row",
			performedID: 300,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetParticipant(gomock.Any(), mock.UserA, mock.BoardID).Return(&models.Participant{ID: 7}, nil)
				repo.EXPECT().GetPerformed(gomock.Any(), int64(300)).Return(owned, nil)
				repo.EXPECT().DeletePerformed(gomock.Any(), int64(300)).Return(nil)
			},
		},
		{
			name:        "row of another participant",
			performedID: 301,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetParticipant(gomock.Any(), mock.UserA, mock.BoardID).Return(&models.Participant{ID: 7}, nil)
				repo.EXPECT().GetPerformed(gomock.Any(), int64(301)).Return(foreign, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:        "not a participant",
			performedID: 300,
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetParticipant(gomock.Any(), mock.UserA, mock.BoardID).
					Return(nil, &repositories.NotFoundError{Entity: "participant"})
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			tt.setup(repo)

			got, err := s.CancelPerformed(context.Background(), mock.UserA, mock.BoardID, tt.performedID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("service.CancelPerformed() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.Activity.Points != 10 {
				t.Errorf("service.CancelPerformed() = %+v", got)
			}
		})
	}
}

func Test_service_PerformedByUser_NotParticipant(t *testing.T) {
	s, repo := newService(t)
	repo.EXPECT().GetParticipant(gomock.Any(), mock.UserB, mock.BoardID).
		Return(nil, &repositories.NotFoundError{Entity: "participant"})

	got, err := s.PerformedByUser(context.Background(), mock.UserB, mock.BoardID, 10)
	if err != nil || len(got) != 0 {
		t.Errorf("service.PerformedByUser() = %v, %v", got, err)
	}
}

func Test_service_Score(t *testing.T) {
	tests := []struct {
		name string
		rows []models.ScoreRow
		want []ScoreEntry
	}{
		{
			name: "two executions beat one",
			rows: []models.ScoreRow{{UserID: 2, Name: "B", Score: 10}, {UserID: 1, Name: "A", Score: 20}},
			want: []ScoreEntry{{UserID: 1, Name: "A", Score: 20}, {UserID: 2, Name: "B", Score: 10}},
		},
		{
			name: "ties by name and zero scores kept",
			rows: []models.ScoreRow{
				{UserID: 3, Name: "carol", Score: 0},
				{UserID: 2, Name: "bob", Score: 10},
				{UserID: 1, Name: "alice", Score: 10},
			},
			want: []ScoreEntry{
				{UserID: 1, Name: "alice", Score: 10},
				{UserID: 2, Name: "bob", Score: 10},
				{UserID: 3, Name: "carol", Score: 0},
			},
		},
		{
			name: "negative totals rank last",
			rows: []models.ScoreRow{{UserID: 1, Name: "A", Score: -5}, {UserID: 2, Name: "B", Score: 0}},
			want: []ScoreEntry{{UserID: 2, Name: "B", Score: 0}, {UserID: 1, Name: "A", Score: -5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			repo.EXPECT().Score(gomock.Any(), mock.BoardID).Return(tt.rows, nil)

			got, err := s.Score(context.Background(), mock.BoardID)
			if err != nil {
				t.Fatalf("service.Score() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("service.Score() = %v, want %v", got, tt.want)
			}
		})
	}
}
