package dto

// UpsertCheckRequest sets the full state of one grid cell. minutes and note
// replace the stored values wholesale: omitting them clears them.
type UpsertCheckRequest struct {
	WeeklyItemID int64    `json:"weekly_item_id" binding:"required"`
	Date         DateOnly `json:"date"`
	Status       int      `json:"status" binding:"min=0,max=2"` // 0=not done, 1=done, 2=partial
	Minutes      *int     `json:"minutes" binding:"omitempty,gte=0"`
	Note         *string  `json:"note" binding:"omitempty,max=500"`
}

type CheckResponse struct {
	ID           int64    `json:"id"`
	WeeklyItemID int64    `json:"weekly_item_id"`
	Date         DateOnly `json:"date"`
	Status       int      `json:"status"`
	Minutes      *int     `json:"minutes"`
	Note         *string  `json:"note"`
}
