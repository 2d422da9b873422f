package dto

type CreateItemRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Category   string `json:"category" binding:"max=100"`
	OrderIndex *int   `json:"order_index" binding:"omitempty,gte=0"` // omitted = append at end
}

type UpdateItemRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	Category   *string `json:"category" binding:"omitempty,max=100"`
	OrderIndex *int    `json:"order_index" binding:"omitempty,gte=0"`
}

type ItemResponse struct {
	ID         int64  `json:"id"`
	WeekID     int64  `json:"week_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	OrderIndex int    `json:"order_index"`
}
