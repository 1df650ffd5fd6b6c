package token

import "errors"

var (
	ErrSecretTooShort = errors.New("secret key must be at least 32 bytes")

	// Decode failure kinds. The messages are user-facing: the authorization
	// layer surfaces them verbatim when a token cannot be verified.
	ErrMalformed = errors.New("token is malformed")
	ErrSignature = errors.New("signature is invalid")
	ErrExpired   = errors.New("token is expired")
)
