package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/activityboard/activityboard/activityboard/database/repositories"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
	}{
		{name: "domain not found", err: fmt.Errorf("delete: %w", leaderboard.ErrNotFound), wantType: NotFoundError},
		{name: "repository not found", err: &repositories.NotFoundError{Entity: "activity", ID: 7}, wantType: NotFoundError},
		{name: "duplicate", err: leaderboard.ErrDuplicateActivity, wantType: UserError},
		{name: "empty name", err: leaderboard.ErrEmptyName, wantType: UserError},
		{name: "timeout", err: fmt.Errorf("query: %w", context.DeadlineExceeded), wantType: SystemError},
		{name: "storage", err: &repositories.RepositoryError{Operation: "insert", Entity: "activity", Err: errors.New("broken pipe")}, wantType: SystemError},
		{name: "other", err: errors.New("connection refused"), wantType: SystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, msg := ClassifyError(tt.err)
			if gotType != tt.wantType {
				t.Errorf("ClassifyError() type = %v, want %v", gotType, tt.wantType)
			}
			if msg == "" {
				t.Error("ClassifyError() returned an empty message")
			}
		})
	}
}
