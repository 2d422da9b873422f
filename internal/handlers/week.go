package handlers

import (
	"net/http"
	"strconv"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
	"github.com/safwannuddin/Schedule-tracker/internal/dto"
	"github.com/safwannuddin/Schedule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type WeekHandler struct {
	svc *service.WeekService
}

func NewWeekHandler(svc *service.WeekService) *WeekHandler {
	return &WeekHandler{svc: svc}
}

// Create godoc
// @Summary      Start a new week
// @Tags         weeks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateWeekRequest  true  "Week body"
// @Success      201   {object}  dto.WeekResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /weeks [post]
func (h *WeekHandler) Create(c *gin.Context) {
	var req dto.CreateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.WeekStartDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start_date is required"})
		return
	}

	w, err := h.svc.Create(c.Request.Context(), req.WeekStartDate.Time())
	if err != nil {
		switch err {
		case service.ErrNotMonday:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrWeekExists:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, weekToResponse(w))
}

// List godoc
// @Summary      List weeks, or find the week containing a date
// @Tags         weeks
// @Produce      json
// @Param        date  query     string  false  "Any date (YYYY-MM-DD); returns the week covering it"
// @Success      200   {object}  dto.ListWeeksResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /weeks [get]
func (h *WeekHandler) List(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	list, err := h.svc.List(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListWeeksResponse{Items: weeksToResponses(list)})
}

// GetByID godoc
// @Summary      Get a week by ID
// @Tags         weeks
// @Produce      json
// @Param        id   path      int  true  "Week ID"
// @Success      200  {object}  dto.WeekResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /weeks/{id} [get]
func (h *WeekHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	w, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, weekToResponse(w))
}

// Grid godoc
// @Summary      Get the full week grid (items x 7 days, gaps filled)
// @Tags         weeks
// @Produce      json
// @Param        id   path      int  true  "Week ID"
// @Success      200  {object}  dto.GridResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /weeks/{id}/grid [get]
func (h *WeekHandler) Grid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	grid, err := h.svc.Grid(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gridToResponse(grid))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func weekToResponse(w dom.Week) dto.WeekResponse {
	return dto.WeekResponse{
		ID:            w.ID,
		WeekStartDate: dto.NewDateOnly(w.WeekStartDate),
	}
}

func weeksToResponses(list []dom.Week) []dto.WeekResponse {
	out := make([]dto.WeekResponse, len(list))
	for i := range list {
		out[i] = weekToResponse(list[i])
	}
	return out
}

func gridToResponse(g dom.WeekGrid) dto.GridResponse {
	items := make([]dto.GridItemResponse, len(g.Rows))
	for i, row := range g.Rows {
		cells := make([]dto.GridCellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = dto.GridCellResponse{
				ID:      cell.ID,
				Date:    dto.NewDateOnly(cell.Date),
				Status:  cell.Status,
				Minutes: cell.Minutes,
				Note:    cell.Note,
			}
		}
		items[i] = dto.GridItemResponse{
			ID:         row.Item.ID,
			Name:       row.Item.Name,
			Category:   row.Item.Category,
			OrderIndex: row.Item.OrderIndex,
			Checks:     cells,
		}
	}
	return dto.GridResponse{Week: weekToResponse(g.Week), Items: items}
}
