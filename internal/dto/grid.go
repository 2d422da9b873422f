package dto

// GridCellResponse is one day of one item. A nil id marks a synthesized
// cell: nothing is persisted for that day.
type GridCellResponse struct {
	ID      *int64   `json:"id"`
	Date    DateOnly `json:"date"`
	Status  int      `json:"status"`
	Minutes *int     `json:"minutes"`
	Note    *string  `json:"note"`
}

type GridItemResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	OrderIndex int                `json:"order_index"`
	Checks     []GridCellResponse `json:"checks"` // always 7, Monday..Sunday
}

type GridResponse struct {
	Week  WeekResponse       `json:"week"`
	Items []GridItemResponse `json:"items"`
}
