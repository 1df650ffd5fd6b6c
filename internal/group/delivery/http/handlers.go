package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ledgerly-api/internal/group"
	"ledgerly-api/internal/model"
	"ledgerly-api/pkg/authgate"
	pkgErrors "ledgerly-api/pkg/errors"
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

// Create makes a new group with the caller and the listed members.
// @Summary Create group
// @Description Creates a group. The caller is added to the members when not listed. Emails that do not exist or already belong to a group are reported back instead of added.
// @Tags Group
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups [POST]
func (h *Handler) Create(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Simple{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, group.ErrMissingParameters, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	out, err := h.uc.Create(c.Request.Context(), h.scope(c), newCreateInput(req))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "group.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, createResp{
		Group:           newGroupResp(out.Group),
		MembersNotFound: newMemberList(out.MembersNotFound),
		AlreadyInGroup:  newMemberList(out.AlreadyInGroup),
	})
}

// List returns all groups.
// @Summary List groups
// @Description Returns every group with its members. Admin only.
// @Tags Group
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups [GET]
func (h *Handler) List(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	grps, err := h.uc.List(c.Request.Context(), h.scope(c))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "group.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(grps))
}

// GetOne returns a single group by name.
// @Summary Get group
// @Description Returns one group. Accessible by its members or an admin.
// @Tags Group
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups/{name} [GET]
func (h *Handler) GetOne(c *gin.Context) {
	// The group is looked up before the auth check so that membership can
	// drive the group-mode verdict.
	grp, err := h.uc.GetOne(c.Request.Context(), h.scope(c), c.Param("name"))
	if err != nil {
		if err == group.ErrGroupNotFound {
			response.ErrorWithMap(c, err, map[error]*pkgErrors.HTTPError{
				group.ErrGroupNotFound: pkgErrors.NewBadRequestHTTPError("No such Group"),
			})
			return
		}
		h.l.Errorf(c.Request.Context(), "group.delivery.http.GetOne: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	adminVerdict := h.gate.Check(c, authgate.Admin{})
	groupVerdict := h.gate.Check(c, authgate.Group{Members: grp.MemberEmails()})
	if !adminVerdict.Authorized && !groupVerdict.Authorized {
		response.Unauthorized(c, authgate.CauseUnauthorized)
		return
	}

	response.OK(c, newGroupResp(grp))
}

// AddMembers adds members to a group.
// @Summary Add group members
// @Description Adds the listed emails to the group. The add variant requires group membership, the insert variant requires an admin.
// @Tags Group
// @Accept json
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups/{name}/add [PATCH]
func (h *Handler) AddMembers(c *gin.Context) {
	name := c.Param("name")

	grp, err := h.uc.GetOne(c.Request.Context(), h.scope(c), name)
	if err != nil {
		if err != group.ErrGroupNotFound {
			h.l.Errorf(c.Request.Context(), "group.delivery.http.AddMembers: %v", err)
		}
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if verdict := h.gate.Check(c, h.memberMode(c, grp, "/insert")); !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req membersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, group.ErrMissingBodyAttrs, h.errorMapping())
		return
	}

	if err := req.validate(name); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	out, err := h.uc.AddMembers(c.Request.Context(), h.scope(c), group.MembersInput{
		Name:   name,
		Emails: req.Emails,
	})
	if err != nil {
		h.l.Errorf(c.Request.Context(), "group.delivery.http.AddMembers: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, addResp{
		Group:           newGroupResp(out.Group),
		MembersNotFound: newMemberList(out.MembersNotFound),
		AlreadyInGroup:  newMemberList(out.AlreadyInGroup),
	})
}

// RemoveMembers removes members from a group.
// @Summary Remove group members
// @Description Removes the listed emails from the group, always keeping at least one member. The remove variant requires group membership, the pull variant requires an admin.
// @Tags Group
// @Accept json
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups/{name}/remove [PATCH]
func (h *Handler) RemoveMembers(c *gin.Context) {
	name := c.Param("name")

	grp, err := h.uc.GetOne(c.Request.Context(), h.scope(c), name)
	if err != nil {
		if err != group.ErrGroupNotFound {
			h.l.Errorf(c.Request.Context(), "group.delivery.http.RemoveMembers: %v", err)
		}
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if verdict := h.gate.Check(c, h.memberMode(c, grp, "/pull")); !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req membersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, group.ErrMissingBodyAttrs, h.errorMapping())
		return
	}

	if err := req.validate(name); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	out, err := h.uc.RemoveMembers(c.Request.Context(), h.scope(c), group.MembersInput{
		Name:   name,
		Emails: req.Emails,
	})
	if err != nil {
		h.l.Errorf(c.Request.Context(), "group.delivery.http.RemoveMembers: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, removeResp{
		Group:           newGroupResp(out.Group),
		MembersNotFound: newMemberList(out.MembersNotFound),
		NotInGroup:      newMemberList(out.NotInGroup),
	})
}

// memberMode picks the gate mode for the paired member/admin routes.
func (h *Handler) memberMode(c *gin.Context, grp model.Group, adminSuffix string) authgate.Mode {
	if strings.HasSuffix(c.FullPath(), adminSuffix) {
		return authgate.Admin{}
	}
	return authgate.Group{Members: grp.MemberEmails()}
}

// Delete removes a group.
// @Summary Delete group
// @Description Deletes the group named in the body. Admin only.
// @Tags Group
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, group.ErrMissingName, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if err := h.uc.Delete(c.Request.Context(), h.scope(c), *req.Name); err != nil {
		if err == group.ErrGroupNotFound {
			response.ErrorWithMap(c, err, map[error]*pkgErrors.HTTPError{
				group.ErrGroupNotFound: pkgErrors.NewBadRequestHTTPError("The group does not exist"),
			})
			return
		}
		h.l.Errorf(c.Request.Context(), "group.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, messageResp{Message: "Group deleted succesfully"})
}
