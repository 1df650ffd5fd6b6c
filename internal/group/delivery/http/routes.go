package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the group routes. The add/remove pair is member
// facing while insert/pull is the admin variant of the same operations.
func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	groups := r.Group("/groups")
	{
		groups.POST("", h.Create)
		groups.GET("", h.List)
		groups.GET("/:name", h.GetOne)
		groups.PATCH("/:name/add", h.AddMembers)
		groups.PATCH("/:name/insert", h.AddMembers)
		groups.PATCH("/:name/remove", h.RemoveMembers)
		groups.PATCH("/:name/pull", h.RemoveMembers)
		groups.DELETE("", h.Delete)
	}
}
