package handlers

import (
	"net/http"

	"classboard/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles GET /api/dashboard. An optional scheduleId query
// parameter restricts the snapshot to one schedule.
func (h *ScheduleHandler) DashboardHandler(c *gin.Context) {
	snapshot, err := h.Service.Dashboard(c.Request.Context(), c.Query("scheduleId"))
	if err != nil {
		respondError(c, err, "Schedule not found", "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// HealthHandler reports the latest status gathered by monitor.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Classboard",
			"services": monitor.Status(),
		})
	}
}
