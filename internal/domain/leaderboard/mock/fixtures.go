package mock

import (
	"time"

	"github.com/activityboard/activityboard/activityboard/database/models"
)

const (
	BoardID = int64(1000)
	UserA   = int64(1)
	UserB   = int64(2)
)

var Created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// Activities on BoardID, in creation order
var Activities = []*models.Activity{
	{ID: 10, LeaderboardID: BoardID, AuthorUserID: UserA, Name: "Push-ups", Points: 10, TimeCreated: Created},
	{ID: 11, LeaderboardID: BoardID, AuthorUserID: UserA, Name: "Running", Points: 25, TimeCreated: Created.Add(time.Minute)},
	{ID: 12, LeaderboardID: BoardID, AuthorUserID: UserB, Name: "Pull-ups", Points: 15, TimeCreated: Created.Add(2 * time.Minute)},
}

// ForeignActivity lives on another board
var ForeignActivity = &models.Activity{ID: 99, LeaderboardID: BoardID + 1, AuthorUserID: UserB, Name: "Chess", Points: 5, TimeCreated: Created}
