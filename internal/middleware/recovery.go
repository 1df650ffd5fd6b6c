package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ledgerly-api/pkg/errors"
	pkgLog "ledgerly-api/pkg/log"
	"ledgerly-api/pkg/response"
)

// Recovery returns a middleware that turns panics into 500 responses.
func Recovery(logger pkgLog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.Error(c, pkgErrors.NewHTTPError(
					http.StatusInternalServerError, response.DefaultErrorMessage))
				c.Abort()
			}
		}()
		c.Next()
	}
}
