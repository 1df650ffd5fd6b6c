package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ledgerly-api/pkg/errors"
	"ledgerly-api/pkg/response"
)

// healthCheck reports whether the storage backends are reachable.
// @Summary Health Check
// @Description Check if the API and its storage backends are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "A storage backend is unreachable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Database connection failed"))
		return
	}

	if err := srv.minio.HealthCheck(ctx); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Object store connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "ledgerly-api",
		"database": "connected",
		"storage":  "connected",
	})
}
