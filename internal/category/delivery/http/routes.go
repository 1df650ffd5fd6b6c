package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the category routes.
func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.POST("", h.Create)
		categories.GET("", h.List)
		categories.PATCH("/:type", h.Update)
		categories.DELETE("", h.Delete)
	}
}
