package handlers

import (
	"net/http"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
	"github.com/safwannuddin/Schedule-tracker/internal/dto"
	"github.com/safwannuddin/Schedule-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Create godoc
// @Summary      Add an item (row) to a week
// @Tags         weekly-items
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Week ID"
// @Param        body  body      dto.CreateItemRequest  true  "Item body"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /weeks/{id}/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	weekID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.svc.Create(c.Request.Context(), weekID, req.Name, req.Category, req.OrderIndex)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, itemToResponse(item))
}

// Update godoc
// @Summary      Update a weekly item (rename, recategorize, reorder)
// @Tags         weekly-items
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Item ID"
// @Param        body  body      dto.UpdateItemRequest  true  "Partial update"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /weekly-items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, req.Name, req.Category, req.OrderIndex)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "weekly item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, itemToResponse(item))
}

// Delete godoc
// @Summary      Delete a weekly item and all its checks
// @Tags         weekly-items
// @Param        id   path  int  true  "Item ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /weekly-items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "weekly item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func itemToResponse(item dom.WeeklyItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:         item.ID,
		WeekID:     item.WeekID,
		Name:       item.Name,
		Category:   item.Category,
		OrderIndex: item.OrderIndex,
	}
}
