package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the authentication routes.
func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.POST("/admin", h.RegisterAdmin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}
