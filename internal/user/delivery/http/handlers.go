package http

import (
	"github.com/gin-gonic/gin"

	"ledgerly-api/internal/model"
	"ledgerly-api/pkg/authgate"
	"ledgerly-api/pkg/response"
)

func (h *Handler) scope(c *gin.Context) model.Scope {
	claims, err := h.gate.Identity(c)
	if err != nil {
		return model.Scope{}
	}

	return model.Scope{
		UserID:   claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}
}

// List returns all registered users.
// @Summary List users
// @Description Returns username, email and role of every registered user. Admin only.
// @Tags User
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users [GET]
func (h *Handler) List(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	usrs, err := h.uc.List(c.Request.Context(), h.scope(c))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "user.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(usrs))
}

// GetOne returns a single user by username.
// @Summary Get user
// @Description Returns one user. Accessible by the account owner or an admin.
// @Tags User
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users/{username} [GET]
func (h *Handler) GetOne(c *gin.Context) {
	username := c.Param("username")

	verdict := h.gate.Check(c, authgate.User{Username: username})
	if !verdict.Authorized {
		adminVerdict := h.gate.Check(c, authgate.Admin{})
		if !adminVerdict.Authorized {
			response.Unauthorized(c, adminVerdict.Cause)
			return
		}
	}

	usr, err := h.uc.GetOne(c.Request.Context(), h.scope(c), username)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "user.delivery.http.GetOne: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newUserResp(usr))
}

// Delete removes a user and their data.
// @Summary Delete user
// @Description Deletes a non-admin user, their transactions and their group membership. Admin only.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, errBadRequest, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	out, err := h.uc.Delete(c.Request.Context(), h.scope(c), newDeleteInput(req))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "user.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, deleteResp{
		DeletedTransactions: out.DeletedTransactions,
		DeletedFromGroup:    out.DeletedFromGroup,
	})
}
