package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the user routes.
func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:username", h.GetOne)
		users.DELETE("", h.Delete)
	}
}
