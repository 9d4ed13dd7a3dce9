package routes

import (
	"time"

	"classboard/handlers"
	"classboard/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.GET("", hb.ListSchedulesHandler)
		api.POST("", hb.CreateScheduleHandler)
		api.GET("/:id", hb.GetScheduleHandler)
		api.PUT("/:id", hb.UpdateScheduleHandler)
		api.DELETE("/:id", hb.DeleteScheduleHandler)
		api.GET("/:id/items", hb.ListScheduleItemsFor)
	}
}

// RegisterScheduleItemRoutes registers schedule item endpoints.
func RegisterScheduleItemRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule-items")
	{
		api.GET("", hb.ListItemsHandler)
		api.POST("", hb.CreateItemHandler)
		api.GET("/:id", hb.GetItemHandler)
		api.PUT("/:id", hb.UpdateItemHandler)
		api.DELETE("/:id", hb.DeleteItemHandler)
	}
}

// RegisterDashboardRoute registers the now/next snapshot endpoint.
func RegisterDashboardRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/dashboard", hb.DashboardHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterScheduleItemRoutes(r, hb)
	RegisterDashboardRoute(r, hb)
}
