package response

import (
	"net/http"

	pkgErrors "ledgerly-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data and any pending renewal notice.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		Data:                  data,
		RefreshedTokenMessage: notice(c),
	})
}

// Unauthorized sends 401 with the authorization verdict cause.
func Unauthorized(c *gin.Context, cause string) {
	c.JSON(http.StatusUnauthorized, Resp{
		Error:                 cause,
		RefreshedTokenMessage: notice(c),
	})
}

// Error sends the response for err: HTTPError as-is, anything else as 500.
func Error(c *gin.Context, err error) {
	statusCode, resp := parseError(c, err)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the corresponding HTTPError,
// falling back to Error for unmapped values.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr)
		return
	}
	Error(c, err)
}

func parseError(c *gin.Context, err error) (int, Resp) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		return httpErr.StatusCode, Resp{
			Error:                 httpErr.Message,
			RefreshedTokenMessage: notice(c),
		}
	}
	return http.StatusInternalServerError, Resp{
		Error:                 DefaultErrorMessage,
		RefreshedTokenMessage: notice(c),
	}
}

func notice(c *gin.Context) string {
	return c.GetString(CtxRefreshedTokenMessage)
}
