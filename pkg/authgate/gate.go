package authgate

import (
	"errors"
	"fmt"
	"time"

	"ledgerly-api/pkg/token"
)

// Verdict causes. Handlers return the cause verbatim in the error payload
// when Authorized is false.
const (
	CauseAuthorized      = "Authorized"
	CauseUnauthorized    = "Unauthorized"
	CauseMissingInfo     = "Token is missing information"
	CauseMismatchedUsers = "Mismatched users"
	CauseNotAdmin        = "Not admin role"
	CauseNotInGroup      = "Email is not included in the group emails"
	CauseNotOwnAccount   = "The user can only access information about his account!"
	CausePerformLogin    = "Perform login again"
)

// RenewalNotice is attached to every response of a request whose access
// token was transparently refreshed.
const RenewalNotice = "Access token has been refreshed. Remember to copy the new one in the headers of subsequent calls"

const (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Verdict is the outcome of an authorization check.
type Verdict struct {
	Authorized bool
	Cause      string
}

// Renewal carries a freshly minted access token that the transport layer
// must hand back to the client.
type Renewal struct {
	AccessToken string
	Notice      string
}

// CookieConfig describes where session cookies are scoped.
type CookieConfig struct {
	Domain string
	Path   string
	Secure bool
}

// Config wires a Gate.
type Config struct {
	Codec      *token.Codec
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Cookie     CookieConfig
}

// Gate evaluates the dual token session scheme: a short lived access token
// backed by a longer lived refresh token signed with the same secret.
type Gate struct {
	codec      *token.Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
	cookie     CookieConfig
}

// New builds a Gate, filling in default TTLs and the default cookie path.
func New(cfg Config) (*Gate, error) {
	if cfg.Codec == nil {
		return nil, fmt.Errorf("authgate.New: codec is required")
	}

	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = "/api"
	}

	return &Gate{
		codec:      cfg.Codec,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		cookie:     cfg.Cookie,
	}, nil
}

// AccessTTL reports the lifetime used for minted access tokens.
func (g *Gate) AccessTTL() time.Duration {
	return g.accessTTL
}

// RefreshTTL reports the lifetime used for minted refresh tokens.
func (g *Gate) RefreshTTL() time.Duration {
	return g.refreshTTL
}

// IssueTokens mints an access and refresh token pair for the given claims
// using the gate's configured lifetimes.
func (g *Gate) IssueTokens(cl token.Claims) (access, refresh string, err error) {
	access, err = g.codec.Encode(cl, g.accessTTL)
	if err != nil {
		return "", "", err
	}

	refresh, err = g.codec.Encode(cl, g.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// Authorize evaluates the session tokens against the given mode. It never
// touches transport state: when the access token is expired but the refresh
// token still verifies, the returned Renewal holds the replacement access
// token and the caller is responsible for delivering it.
//
// The renewal path authorizes on the strength of the refresh token alone and
// does not re-evaluate the mode policy. That matches the long standing
// behavior of this check; see TestGate_RenewalSkipsPolicy.
func (g *Gate) Authorize(access, refresh string, mode Mode) (Verdict, *Renewal) {
	if access == "" || refresh == "" {
		return deny(CauseUnauthorized), nil
	}

	accessClaims, accessErr := g.codec.Decode(access)
	refreshClaims, refreshErr := g.codec.Decode(refresh)

	if accessErr == nil && refreshErr == nil {
		if missingInfo(accessClaims) || missingInfo(refreshClaims) {
			return deny(CauseMissingInfo), nil
		}
		if accessClaims.Username != refreshClaims.Username ||
			accessClaims.Email != refreshClaims.Email ||
			accessClaims.Role != refreshClaims.Role {
			return deny(CauseMismatchedUsers), nil
		}

		return applyPolicy(accessClaims, mode), nil
	}

	// The tokens are checked in order, so the failure that drives the
	// recovery branch is the access token's when both fail.
	firstErr := accessErr
	if firstErr == nil {
		firstErr = refreshErr
	}

	if errors.Is(firstErr, token.ErrExpired) {
		switch {
		case refreshErr == nil:
			renewed, err := g.codec.Encode(token.Claims{
				Username: refreshClaims.Username,
				Email:    refreshClaims.Email,
				ID:       refreshClaims.ID,
				Role:     refreshClaims.Role,
			}, g.accessTTL)
			if err != nil {
				return deny(err.Error()), nil
			}

			return Verdict{Authorized: true, Cause: CauseAuthorized},
				&Renewal{AccessToken: renewed, Notice: RenewalNotice}
		case errors.Is(refreshErr, token.ErrExpired):
			return deny(CausePerformLogin), nil
		default:
			return deny(refreshErr.Error()), nil
		}
	}

	return deny(firstErr.Error()), nil
}

func applyPolicy(cl token.Claims, mode Mode) Verdict {
	switch m := mode.(type) {
	case Admin:
		if cl.Role != token.RoleAdmin {
			return deny(CauseNotAdmin)
		}
	case Group:
		found := false
		for _, email := range m.Members {
			if email == cl.Email {
				found = true
				break
			}
		}
		if !found {
			return deny(CauseNotInGroup)
		}
	case User:
		if cl.Username != m.Username {
			return deny(CauseNotOwnAccount)
		}
	}

	return Verdict{Authorized: true, Cause: CauseAuthorized}
}

func missingInfo(cl token.Claims) bool {
	return cl.Username == "" || cl.Email == "" || cl.Role == ""
}

func deny(cause string) Verdict {
	return Verdict{Authorized: false, Cause: cause}
}
