package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/activityboard/activityboard/internal/domain/leaderboard"
)

func TestScoreboardImageService_generateHTML(t *testing.T) {
	s := &ScoreboardImageService{
		logger: slog.Default(),
		now:    func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}

	entries := make([]leaderboard.ScoreEntry, 0, 12)
	entries = append(entries,
		leaderboard.ScoreEntry{UserID: 1, Name: "<script>alice</script>", Score: 1200},
		leaderboard.ScoreEntry{UserID: 2, Name: "bob", Score: 10},
	)
	for i := 0; i < 10; i++ {
		entries = append(entries, leaderboard.ScoreEntry{UserID: int64(10 + i), Name: "filler", Score: 0})
	}

	got, err := s.generateHTML("gym", entries)
	if err != nil {
		t.Fatalf("generateHTML() error = %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{name: "title", want: "🏆 gym"},
		{name: "participant count", want: "12 participants"},
		{name: "timestamp", want: "May 1, 12:00 UTC"},
		{name: "medal", want: "🥇"},
		{name: "grouped score", want: "1,200"},
		{name: "escaped name", want: "&lt;script&gt;alice&lt;/script&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(got, tt.want) {
				t.Errorf("generateHTML() missing %q", tt.want)
			}
		})
	}

	if rows := strings.Count(got, `class="rank"`); rows != 10 {
		t.Errorf("rendered %d rows, want 10", rows)
	}
}

func TestScoreboardImageService_RenderAfterFailedProbe(t *testing.T) {
	s := NewScoreboardImageService()
	if !s.Available() {
		t.Fatal("new service should be available until a probe fails")
	}

	s.unavailable.Store(true)
	entries := []leaderboard.ScoreEntry{{UserID: 1, Name: "A", Score: 20}}
	if _, err := s.Render(context.Background(), "gym", entries); !errors.Is(err, ErrImagesUnavailable) {
		t.Errorf("Render() error = %v, want %v", err, ErrImagesUnavailable)
	}
	if s.Available() {
		t.Error("Available() = true after failed probe")
	}
}
