package dto

type CreateWeekRequest struct {
	WeekStartDate DateOnly `json:"week_start_date"` // "2024-01-01", must be a Monday
}

type WeekResponse struct {
	ID            int64    `json:"id"`
	WeekStartDate DateOnly `json:"week_start_date"`
}

type ListWeeksResponse struct {
	Items []WeekResponse `json:"items"`
}
