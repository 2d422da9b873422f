package domain

import "time"

// Check statuses.
const (
	StatusNotDone = 0
	StatusDone    = 1
	StatusPartial = 2
)

// DailyCheck is one cell of the grid: what happened for an item on a date.
// At most one check exists per (WeeklyItemID, Date) pair; writes for the
// same pair overwrite status, minutes and note wholesale.
type DailyCheck struct {
	ID           int64
	WeeklyItemID int64
	Date         time.Time
	Status       int
	Minutes      *int
	Note         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
