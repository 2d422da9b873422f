package handlers

import (
	"net/http"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
	"github.com/safwannuddin/Schedule-tracker/internal/dto"
	"github.com/safwannuddin/Schedule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckHandler struct {
	svc *service.CheckService
}

func NewCheckHandler(svc *service.CheckService) *CheckHandler {
	return &CheckHandler{svc: svc}
}

// Upsert godoc
// @Summary      Create or overwrite the check for an item and date
// @Description  Keyed by (weekly_item_id, date): the first call creates the
// @Description  check, later calls replace status/minutes/note wholesale.
// @Tags         daily-checks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpsertCheckRequest  true  "Check body"
// @Success      200   {object}  dto.CheckResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /daily-checks [put]
func (h *CheckHandler) Upsert(c *gin.Context) {
	var req dto.UpsertCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	check, err := h.svc.Upsert(c.Request.Context(), req.WeeklyItemID, req.Date.Time(), req.Status, req.Minutes, req.Note)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "weekly item not found"})
		case service.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, checkToResponse(check))
}

func checkToResponse(check dom.DailyCheck) dto.CheckResponse {
	return dto.CheckResponse{
		ID:           check.ID,
		WeeklyItemID: check.WeeklyItemID,
		Date:         dto.NewDateOnly(check.Date),
		Status:       check.Status,
		Minutes:      check.Minutes,
		Note:         check.Note,
	}
}
