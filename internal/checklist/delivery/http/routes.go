package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/templates", h.ListTemplates)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/:id", h.DetailSession)
		sessions.DELETE("/:id", h.DeleteSession)

		// State reads go through the provider scope middleware.
		sessions.GET("/:id/state", h.withProvider(), h.State)

		sessions.POST("/:id/items/:itemID/toggle", h.ToggleItem)
		sessions.POST("/:id/items/:itemID/expand", h.ToggleExpanded)
		sessions.PUT("/:id/items/:itemID", h.SetItemChecked)
		sessions.POST("/:id/reset", h.ResetItems)
		sessions.GET("/:id/progress", h.Progress)
		sessions.POST("/:id/followup", h.ScheduleFollowUp)
	}
}
