package domain

import "time"

// Week is one tracked calendar week. WeekStartDate is always a Monday and
// unique across all weeks.
type Week struct {
	ID            int64
	WeekStartDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Dates returns the seven dates of the week, Monday through Sunday.
func (w Week) Dates() [7]time.Time {
	var days [7]time.Time
	for i := range days {
		days[i] = w.WeekStartDate.AddDate(0, 0, i)
	}
	return days
}
