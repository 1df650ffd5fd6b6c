package http

import (
	"github.com/gin-gonic/gin"

	"ledgerly-api/internal/auth"
	"ledgerly-api/pkg/authgate"
	"ledgerly-api/pkg/response"
)

// Register creates a new regular user account.
// @Summary Register
// @Description Registers a new user with the Regular role.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, auth.ErrMissingAttributes, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if err := h.uc.Register(c.Request.Context(), req.toInput()); err != nil {
		h.l.Errorf(c.Request.Context(), "auth.delivery.http.Register: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, messageResp{Message: "User registred successfully."})
}

// RegisterAdmin creates a new admin account.
// @Summary Register admin
// @Description Registers a new user with the Admin role.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /admin [POST]
func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, auth.ErrMissingAttributes, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if err := h.uc.RegisterAdmin(c.Request.Context(), req.toInput()); err != nil {
		h.l.Errorf(c.Request.Context(), "auth.delivery.http.RegisterAdmin: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, messageResp{Message: "Admin added succesfully"})
}

// Login verifies credentials and opens a session.
// @Summary Login
// @Description Verifies credentials, sets the session cookies and returns both tokens.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, auth.ErrMissingAttributes, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	out, err := h.uc.Login(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.l.Errorf(c.Request.Context(), "auth.delivery.http.Login: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	h.gate.SetAccessCookie(c, out.AccessToken)
	h.gate.SetRefreshCookie(c, out.RefreshToken)

	response.OK(c, loginResp{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	})
}

// Logout closes the current session.
// @Summary Logout
// @Description Invalidates the stored refresh token and clears the session cookies.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /logout [GET]
func (h *Handler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(authgate.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		response.ErrorWithMap(c, auth.ErrRefreshTokenNotFound, h.errorMapping())
		return
	}

	if err := h.uc.Logout(c.Request.Context(), refreshToken); err != nil {
		h.l.Errorf(c.Request.Context(), "auth.delivery.http.Logout: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	h.gate.ClearSessionCookies(c)

	response.OK(c, messageResp{Message: "User logged out"})
}
