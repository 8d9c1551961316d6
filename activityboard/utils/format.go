package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/activityboard/activityboard/internal/domain/leaderboard"
)

var medals = []string{"🥇", "🥈", "🥉"}

func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:]
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}

// Rank returns the medal for the first three places and "#n" after that
func Rank(i int) string {
	if i < len(medals) {
		return medals[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

// FormatScoreboard renders the score as an ANSI code block
func FormatScoreboard(entries []leaderboard.ScoreEntry) string {
	var b strings.Builder
	b.WriteString("```ansi\n")
	for i, entry := range entries {
		b.WriteString(fmt.Sprintf("%s \x1b[32m%s\x1b[0m \x1b[33m%s\x1b[0m points\n",
			Rank(i), entry.Name, FormatNumber(entry.Score)))
	}
	b.WriteString("```")
	return b.String()
}

func FormatActivities(activities []leaderboard.Activity) string {
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		lines = append(lines, fmt.Sprintf("• %s - %d points", a.Name, a.Points))
	}
	return strings.Join(lines, "\n")
}

func FormatLogEntry(entry leaderboard.LogEntry) string {
	return fmt.Sprintf("`%s` %s: %s (%+d)",
		entry.PerformedAt.UTC().Format(time.DateTime), entry.UserName, entry.ActivityName, entry.Points)
}

func FormatLog(entries []leaderboard.LogEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, FormatLogEntry(entry))
	}
	return strings.Join(lines, "\n")
}
