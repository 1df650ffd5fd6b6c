package http

import (
	"regexp"
	"strings"

	"ledgerly-api/internal/auth"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerReq) validate() error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return auth.ErrMissingAttributes
	}
	if strings.TrimSpace(r.Username) == "" || strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Password) == "" {
		return auth.ErrEmptyAttributes
	}
	if !emailRegex.MatchString(r.Email) {
		return auth.ErrInvalidEmail
	}
	return nil
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) validate() error {
	if r.Email == "" || r.Password == "" {
		return auth.ErrMissingAttributes
	}
	if strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Password) == "" {
		return auth.ErrEmptyAttributes
	}
	if !emailRegex.MatchString(r.Email) {
		return auth.ErrInvalidEmail
	}
	return nil
}

type messageResp struct {
	Message string `json:"message"`
}

type loginResp struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
