package authgate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly-api/pkg/response"
	"ledgerly-api/pkg/token"
)

// Session cookie names.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Check runs Authorize against the request's session cookies. When the
// access token is renewed, the replacement cookie is set on the response and
// the renewal notice is stashed in the context so the response envelope can
// echo it.
func (g *Gate) Check(c *gin.Context, mode Mode) Verdict {
	access, _ := c.Cookie(AccessTokenCookie)
	refresh, _ := c.Cookie(RefreshTokenCookie)

	verdict, renewal := g.Authorize(access, refresh, mode)
	if renewal != nil {
		g.SetAccessCookie(c, renewal.AccessToken)
		c.Set(response.CtxRefreshedTokenMessage, renewal.Notice)
	}

	return verdict
}

// Identity returns the claims of the calling session, reading the refresh
// token when the access token has already expired. It is only meaningful
// after Check has authorized the request.
func (g *Gate) Identity(c *gin.Context) (token.Claims, error) {
	access, _ := c.Cookie(AccessTokenCookie)

	claims, err := g.codec.Decode(access)
	if err != nil && errors.Is(err, token.ErrExpired) {
		refresh, _ := c.Cookie(RefreshTokenCookie)
		return g.codec.Decode(refresh)
	}

	return claims, err
}

// SetAccessCookie writes the access token cookie with the gate's scope.
func (g *Gate) SetAccessCookie(c *gin.Context, tok string) {
	g.setCookie(c, AccessTokenCookie, tok, int(g.accessTTL.Seconds()))
}

// SetRefreshCookie writes the refresh token cookie with the gate's scope.
func (g *Gate) SetRefreshCookie(c *gin.Context, tok string) {
	g.setCookie(c, RefreshTokenCookie, tok, int(g.refreshTTL.Seconds()))
}

// ClearSessionCookies expires both session cookies.
func (g *Gate) ClearSessionCookies(c *gin.Context) {
	g.setCookie(c, AccessTokenCookie, "", -1)
	g.setCookie(c, RefreshTokenCookie, "", -1)
}

func (g *Gate) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(name, value, maxAge, g.cookie.Path, g.cookie.Domain, g.cookie.Secure, true)
}
