package logger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	applog "github.com/activityboard/activityboard/activityboard/logger"
	"github.com/uptrace/bun"
)

// QueryHook reports every bun statement through the application logger.
// A missing row is an expected outcome for lookups and is not logged as a failure.
type QueryHook struct {
	now func() time.Time
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook() *QueryHook {
	return &QueryHook{now: time.Now}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	err := event.Err
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	applog.LogQuery(event.Operation(), event.Query, h.now().Sub(event.StartTime), err)
}
