package handlers

import (
	"net/http"

	"classboard/models"
	"classboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListItemsHandler handles GET /api/schedule-items.
func (h *ScheduleHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.Service.ListAllItems(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemHandler handles GET /api/schedule-items/:id.
func (h *ScheduleHandler) GetItemHandler(c *gin.Context) {
	item, err := h.Service.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Schedule item not found", "Failed to fetch schedule item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItemHandler handles POST /api/schedule-items.
func (h *ScheduleHandler) CreateItemHandler(c *gin.Context) {
	var req models.CreateScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule item data", err)
		return
	}

	item, err := h.Service.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Schedule not found", "Invalid schedule item data")
		return
	}
	getLogger(c).Info("Schedule item created",
		zap.String("id", item.ID),
		zap.String("scheduleId", item.ScheduleID),
		zap.Stringer("startTime", item.StartTime),
	)
	c.JSON(http.StatusCreated, item)
}

// UpdateItemHandler handles PUT /api/schedule-items/:id with a partial body.
func (h *ScheduleHandler) UpdateItemHandler(c *gin.Context) {
	var req models.UpdateScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule item data", err)
		return
	}

	item, err := h.Service.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Schedule item not found", "Invalid schedule item data")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItemHandler handles DELETE /api/schedule-items/:id.
func (h *ScheduleHandler) DeleteItemHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err, "Schedule item not found", "Failed to delete schedule item")
		return
	}
	c.Status(http.StatusNoContent)
}
