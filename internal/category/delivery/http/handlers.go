package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"ledgerly-api/internal/category"
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

// Create adds a new category.
// @Summary Create category
// @Description Creates a category with a type and a color. Admin only.
// @Tags Category
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /categories [POST]
func (h *Handler) Create(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, category.ErrIncompleteBody, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	cat, err := h.uc.Create(c.Request.Context(), h.scope(c), category.CreateInput{
		Type:  req.Type,
		Color: req.Color,
	})
	if err != nil {
		h.l.Errorf(c.Request.Context(), "category.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newCategoryResp(cat))
}

// List returns all categories.
// @Summary List categories
// @Description Returns every category with its type and color.
// @Tags Category
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /categories [GET]
func (h *Handler) List(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Simple{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	cats, err := h.uc.List(c.Request.Context(), h.scope(c))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "category.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(cats))
}

// Update edits a category's type or color.
// @Summary Update category
// @Description Renames or recolors a category, moving its transactions to the new type. Admin only.
// @Tags Category
// @Accept json
// @Produce json
// @Param type path string true "Category type"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /categories/{type} [PATCH]
func (h *Handler) Update(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, category.ErrMissingValues, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	out, err := h.uc.Update(c.Request.Context(), h.scope(c), newUpdateInput(c.Param("type"), req))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "category.delivery.http.Update: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, countResp{
		Message: "Category updated successfully",
		Count:   out.RetypedTransactions,
	})
}

// Delete removes categories, reassigning their transactions.
// @Summary Delete categories
// @Description Deletes the listed category types. Their transactions move to the oldest surviving category. Admin only.
// @Tags Category
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /categories [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, category.ErrEmptyTypes, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	out, err := h.uc.Delete(c.Request.Context(), h.scope(c), req.Types)
	if err != nil {
		var notFound *category.TypeNotFoundError
		if errors.As(err, &notFound) {
			response.Error(c, pkgErrors.NewBadRequestHTTPError(
				fmt.Sprintf("The category of type '%s' doesn't exist", notFound.Type)))
			return
		}
		h.l.Errorf(c.Request.Context(), "category.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, countResp{
		Message: "Categories deleted",
		Count:   out.AffectedTransactions,
	})
}
