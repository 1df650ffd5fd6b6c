package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ledgerly-api/internal/group"
	"ledgerly-api/internal/model"
	"ledgerly-api/internal/transaction"
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

func adminRoute(c *gin.Context, prefix string) bool {
	return strings.Contains(c.FullPath(), prefix)
}

// Create records a new expense for a user.
// @Summary Create transaction
// @Description Records a transaction for the route user. The amount may be a number or a numeric string.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users/{username}/transactions [POST]
func (h *Handler) Create(c *gin.Context) {
	username := c.Param("username")

	verdict := h.gate.Check(c, authgate.User{Username: username})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, transaction.ErrMissingParams, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	amount, err := req.parseAmount()
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if req.Username != username {
		response.ErrorWithMap(c, transaction.ErrUsernameMismatch, h.errorMapping())
		return
	}

	tr, err := h.uc.Create(c.Request.Context(), h.scope(c), transaction.CreateInput{
		Username: req.Username,
		Type:     req.Type,
		Amount:   amount,
	})
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newTransactionResp(tr))
}

// ListAll returns every transaction of every user.
// @Summary List all transactions
// @Description Returns every transaction joined with its category color. Admin only.
// @Tags Transaction
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /transactions [GET]
func (h *Handler) ListAll(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	trs, err := h.uc.ListAll(c.Request.Context(), h.scope(c))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.ListAll: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(trs))
}

// ListByUser returns a user's transactions. On the user route the query
// parameters date, from, upTo, min and max narrow the listing; the admin
// route ignores them.
// @Summary List user transactions
// @Description Returns the route user's transactions. The user variant honors date and amount query filters; the /transactions/users variant is admin only.
// @Tags Transaction
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users/{username}/transactions [GET]
func (h *Handler) ListByUser(c *gin.Context) {
	username := c.Param("username")

	ip := transaction.ListByUserInput{Username: username}
	if adminRoute(c, "/transactions/users/") {
		verdict := h.gate.Check(c, authgate.Admin{})
		if !verdict.Authorized {
			response.Unauthorized(c, verdict.Cause)
			return
		}
	} else {
		verdict := h.gate.Check(c, authgate.User{Username: username})
		if !verdict.Authorized {
			response.Unauthorized(c, verdict.Cause)
			return
		}
		ip.Filter = transaction.FilterParams{
			Date: c.Query("date"),
			From: c.Query("from"),
			UpTo: c.Query("upTo"),
			Min:  c.Query("min"),
			Max:  c.Query("max"),
		}
	}

	trs, err := h.uc.ListByUser(c.Request.Context(), h.scope(c), ip)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.ListByUser: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(trs))
}

// ListByUserByCategory returns a user's transactions of one category.
// @Summary List user transactions by category
// @Description Returns the route user's transactions restricted to one category. The /transactions/users variant is admin only.
// @Tags Transaction
// @Produce json
// @Param username path string true "Username"
// @Param category path string true "Category type"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users/{username}/transactions/category/{category} [GET]
func (h *Handler) ListByUserByCategory(c *gin.Context) {
	username := c.Param("username")

	var verdict authgate.Verdict
	if adminRoute(c, "/transactions/users/") {
		verdict = h.gate.Check(c, authgate.Admin{})
	} else {
		verdict = h.gate.Check(c, authgate.User{Username: username})
	}
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	trs, err := h.uc.ListByUserByCategory(c.Request.Context(), h.scope(c), username, c.Param("category"))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.ListByUserByCategory: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(trs))
}

// checkGroupAccess loads the group and verifies the caller may read its
// transactions. The lookup runs first so membership can drive the verdict.
func (h *Handler) checkGroupAccess(c *gin.Context, name string) bool {
	grp, err := h.groupUC.GetOne(c.Request.Context(), h.scope(c), name)
	if err != nil {
		if err == group.ErrGroupNotFound {
			response.Error(c, pkgErrors.NewBadRequestHTTPError("No such Group"))
			return false
		}
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.checkGroupAccess: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return false
	}

	var verdict authgate.Verdict
	if adminRoute(c, "/transactions/groups/") {
		verdict = h.gate.Check(c, authgate.Admin{})
	} else {
		verdict = h.gate.Check(c, authgate.Group{Members: grp.MemberEmails()})
	}
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return false
	}

	return true
}

// ListByGroup returns all transactions made by a group's members.
// @Summary List group transactions
// @Description Returns the transactions of every member of the group. The group variant requires membership, the /transactions/groups variant an admin.
// @Tags Transaction
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups/{name}/transactions [GET]
func (h *Handler) ListByGroup(c *gin.Context) {
	name := c.Param("name")

	if !h.checkGroupAccess(c, name) {
		return
	}

	trs, err := h.uc.ListByGroup(c.Request.Context(), h.scope(c), name)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.ListByGroup: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(trs))
}

// ListByGroupByCategory returns a group's transactions of one category.
// @Summary List group transactions by category
// @Description Returns the group members' transactions restricted to one category. The group variant requires membership, the /transactions/groups variant an admin.
// @Tags Transaction
// @Produce json
// @Param name path string true "Group name"
// @Param category path string true "Category type"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /groups/{name}/transactions/category/{category} [GET]
func (h *Handler) ListByGroupByCategory(c *gin.Context) {
	name := c.Param("name")

	if !h.checkGroupAccess(c, name) {
		return
	}

	trs, err := h.uc.ListByGroupByCategory(c.Request.Context(), h.scope(c), name, c.Param("category"))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.ListByGroupByCategory: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListResp(trs))
}

// Delete removes one of the route user's transactions.
// @Summary Delete transaction
// @Description Deletes the transaction named by _id in the body, if it belongs to the route user.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users/{username}/transactions [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	username := c.Param("username")

	verdict := h.gate.Check(c, authgate.User{Username: username})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, transaction.ErrMissingID, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if err := h.uc.Delete(c.Request.Context(), h.scope(c), username, req.ID); err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, messageResp{Message: "Transaction deleted"})
}

// DeleteMany removes the transactions listed by _ids in the body. Nothing
// is deleted unless every id matches a transaction.
// @Summary Delete transactions
// @Description Deletes all transactions whose ids are listed in the body. Admin only.
// @Tags Transaction
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /transactions [DELETE]
func (h *Handler) DeleteMany(c *gin.Context) {
	verdict := h.gate.Check(c, authgate.Admin{})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	var req deleteManyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMap(c, transaction.ErrMissingIDs, h.errorMapping())
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	if err := h.uc.DeleteMany(c.Request.Context(), h.scope(c), *req.IDs); err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.DeleteMany: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, messageResp{Message: "Transactions deleted"})
}

// UploadReceipt attaches a receipt file to a transaction.
// @Summary Upload receipt
// @Description Stores the multipart "receipt" file for the transaction and remembers its key.
// @Tags Transaction
// @Accept mpfd
// @Produce json
// @Param username path string true "Username"
// @Param id path string true "Transaction id"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users/{username}/transactions/{id}/receipt [POST]
func (h *Handler) UploadReceipt(c *gin.Context) {
	username := c.Param("username")

	verdict := h.gate.Check(c, authgate.User{Username: username})
	if !verdict.Authorized {
		response.Unauthorized(c, verdict.Cause)
		return
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		response.ErrorWithMap(c, transaction.ErrMissingReceiptFile, h.errorMapping())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.UploadReceipt.Open: %v", err)
		response.ErrorWithMap(c, transaction.ErrMissingReceiptFile, h.errorMapping())
		return
	}
	defer file.Close()

	if err := h.uc.UploadReceipt(c.Request.Context(), h.scope(c), transaction.UploadReceiptInput{
		Username:    username,
		ID:          c.Param("id"),
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}); err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.UploadReceipt: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, messageResp{Message: "Receipt uploaded"})
}

// DownloadReceipt streams a transaction's receipt back to the caller.
// @Summary Download receipt
// @Description Streams the stored receipt file for the transaction. Accessible by the owner or an admin.
// @Tags Transaction
// @Produce octet-stream
// @Param username path string true "Username"
// @Param id path string true "Transaction id"
// @Success 200 {file} binary
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /users/{username}/transactions/{id}/receipt [GET]
func (h *Handler) DownloadReceipt(c *gin.Context) {
	username := c.Param("username")

	verdict := h.gate.Check(c, authgate.User{Username: username})
	if !verdict.Authorized {
		adminVerdict := h.gate.Check(c, authgate.Admin{})
		if !adminVerdict.Authorized {
			response.Unauthorized(c, adminVerdict.Cause)
			return
		}
	}

	obj, err := h.uc.DownloadReceipt(c.Request.Context(), h.scope(c), username, c.Param("id"))
	if err != nil {
		h.l.Errorf(c.Request.Context(), "transaction.delivery.http.DownloadReceipt: %v", err)
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}
	defer obj.Reader.Close()

	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Reader, nil)
}
