package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const minSecretLen = 32

// NewCodec builds a codec over the given HMAC secret.
func NewCodec(secret string) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, ErrSecretTooShort
	}

	return &Codec{secret: []byte(secret)}, nil
}

// Encode signs the claims with HS256. IssuedAt and ExpiresAt are stamped
// here from the current time, overwriting whatever the caller set.
func (c *Codec) Encode(cl Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	cl.StandardClaims = jwt.StandardClaims{
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token.Codec.Encode: %w", err)
	}

	return signed, nil
}

// Decode verifies the signature and expiry of a token and returns its claims.
// Failures map to exactly one of ErrMalformed, ErrSignature or ErrExpired,
// checked in that order when the library reports more than one problem.
// Decode does not require any identity field to be present; callers decide
// what a usable claim set looks like.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return c.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrMalformed
	}

	return *claims, nil
}

func classify(err error) error {
	var vErr *jwt.ValidationError
	if !errors.As(err, &vErr) {
		return ErrMalformed
	}

	switch {
	case vErr.Errors&jwt.ValidationErrorMalformed != 0:
		return ErrMalformed
	case vErr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
		return ErrSignature
	case vErr.Errors&jwt.ValidationErrorExpired != 0:
		return ErrExpired
	default:
		return ErrMalformed
	}
}
