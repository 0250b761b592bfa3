package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	plan := rg.Group("/planning")
	{
		plan.GET("/prioritized", h.Prioritized)
		plan.GET("/schedule", h.Schedule)
		plan.GET("/summary", h.Summary)
	}
}
