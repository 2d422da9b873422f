package domain

import "time"

// WeeklyItem is a row in the week grid: a habit or task tracked day by day.
// OrderIndex drives display order within the week; it is assigned at create
// time and never recompacted after deletes, so duplicates are possible —
// ordering ties break on ID.
type WeeklyItem struct {
	ID         int64
	WeekID     int64
	Name       string
	Category   string
	OrderIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
}
