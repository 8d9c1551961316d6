package logger

import (
	"log/slog"
	"time"
)

// LogQuery logs a finished database statement. Successful statements are
// debug level so the console stays readable in production.
func LogQuery(operation, query string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs,
			slog.String("query", query),
			slog.Any("error", err),
		)...)
		return
	}
	slog.Debug("Query executed", append(attrs, slog.String("query", query))...)
}

// LogTransition logs a dialogue state change for one conversation
func LogTransition(chatID, userID int64, from, to string) {
	if from == to {
		return
	}
	slog.Debug("Dialogue transition",
		slog.String("type", "dlg"),
		slog.Int64("chat_id", chatID),
		slog.Int64("user_id", userID),
		slog.String("from", from),
		slog.String("to", to),
	)
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
