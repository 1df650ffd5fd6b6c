package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the transaction routes. The /transactions/users and
// /transactions/groups prefixes are the admin variants of the user and
// group scoped listings.
func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	users := r.Group("/users/:username/transactions")
	{
		users.POST("", h.Create)
		users.GET("", h.ListByUser)
		users.DELETE("", h.Delete)
		users.GET("/category/:category", h.ListByUserByCategory)
		users.POST("/:id/receipt", h.UploadReceipt)
		users.GET("/:id/receipt", h.DownloadReceipt)
	}

	groups := r.Group("/groups/:name/transactions")
	{
		groups.GET("", h.ListByGroup)
		groups.GET("/category/:category", h.ListByGroupByCategory)
	}

	admin := r.Group("/transactions")
	{
		admin.GET("", h.ListAll)
		admin.DELETE("", h.DeleteMany)
		admin.GET("/users/:username", h.ListByUser)
		admin.GET("/users/:username/category/:category", h.ListByUserByCategory)
		admin.GET("/groups/:name", h.ListByGroup)
		admin.GET("/groups/:name/category/:category", h.ListByGroupByCategory)
	}
}
