package handlers

import (
	"errors"
	"net/http"

	"classboard/models"
	"classboard/services/schedule"
	"classboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves schedules, their items and the dashboard.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// ListSchedulesHandler handles GET /api/schedules.
func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	schedules, err := h.Service.ListSchedules(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedules", err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GetScheduleHandler handles GET /api/schedules/:id.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	s, err := h.Service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Schedule not found", "Failed to fetch schedule")
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateScheduleHandler handles POST /api/schedules.
func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule data", err)
		return
	}

	s, err := h.Service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Schedule not found", "Invalid schedule data")
		return
	}
	getLogger(c).Info("Schedule created", zap.String("id", s.ID), zap.String("name", s.Name))
	c.JSON(http.StatusCreated, s)
}

// UpdateScheduleHandler handles PUT /api/schedules/:id with a partial body.
func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule data", err)
		return
	}

	s, err := h.Service.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Schedule not found", "Failed to update schedule")
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteScheduleHandler handles DELETE /api/schedules/:id. Items go with it.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteSchedule(c.Request.Context(), id); err != nil {
		respondError(c, err, "Schedule not found", "Failed to delete schedule")
		return
	}
	getLogger(c).Info("Schedule deleted", zap.String("id", id))
	c.Status(http.StatusNoContent)
}

// ListScheduleItemsHandler handles GET /api/schedules/:id/items.
func (h *ScheduleHandler) ListScheduleItemsHandler(c *gin.Context) {
	items, err := h.Service.ListItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// respondError maps service errors onto status codes: validation failures
// are 400, missing records 404, anything else 500 with failMsg.
func respondError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	var verr *schedule.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, failMsg, err)
	case errors.Is(err, schedule.ErrScheduleNotFound), errors.Is(err, schedule.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, failMsg, err)
	}
}
