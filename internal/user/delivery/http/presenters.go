package http

import (
	"regexp"
	"strings"

	"ledgerly-api/internal/model"
	"ledgerly-api/internal/user"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type userResp struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func newListResp(usrs []model.User) []userResp {
	res := make([]userResp, len(usrs))
	for i, u := range usrs {
		res[i] = newUserResp(u)
	}
	return res
}

type deleteReq struct {
	Email string `json:"email"`
}

func (r deleteReq) validate() error {
	if r.Email == "" {
		return user.ErrMissingAttributes
	}
	if strings.TrimSpace(r.Email) == "" {
		return user.ErrEmptyAttributes
	}
	if !emailRegex.MatchString(r.Email) {
		return user.ErrInvalidEmail
	}
	return nil
}

func newDeleteInput(r deleteReq) user.DeleteInput {
	return user.DeleteInput{Email: r.Email}
}

type deleteResp struct {
	DeletedTransactions int64 `json:"deletedTransactions"`
	DeletedFromGroup    bool  `json:"deletedFromGroup"`
}
