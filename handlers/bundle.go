package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all the endpoint handlers into one struct.
type HandlerBundle struct {
	// Schedule endpoints
	ListSchedulesHandler  gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	CreateScheduleHandler gin.HandlerFunc
	UpdateScheduleHandler gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc
	ListScheduleItemsFor  gin.HandlerFunc

	// Schedule item endpoints
	ListItemsHandler  gin.HandlerFunc
	GetItemHandler    gin.HandlerFunc
	CreateItemHandler gin.HandlerFunc
	UpdateItemHandler gin.HandlerFunc
	DeleteItemHandler gin.HandlerFunc

	// Dashboard
	DashboardHandler gin.HandlerFunc

	// Health
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler of h into a bundle.
func NewHandlerBundle(h *ScheduleHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		ListSchedulesHandler:  h.ListSchedulesHandler,
		GetScheduleHandler:    h.GetScheduleHandler,
		CreateScheduleHandler: h.CreateScheduleHandler,
		UpdateScheduleHandler: h.UpdateScheduleHandler,
		DeleteScheduleHandler: h.DeleteScheduleHandler,
		ListScheduleItemsFor:  h.ListScheduleItemsHandler,

		ListItemsHandler:  h.ListItemsHandler,
		GetItemHandler:    h.GetItemHandler,
		CreateItemHandler: h.CreateItemHandler,
		UpdateItemHandler: h.UpdateItemHandler,
		DeleteItemHandler: h.DeleteItemHandler,

		DashboardHandler: h.DashboardHandler,
		HealthHandler:    health,
	}
}
