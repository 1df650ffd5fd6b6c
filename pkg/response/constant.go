package response

const (
	// CtxRefreshedTokenMessage is the gin context key under which the auth
	// gate stores the renewal notice for the current request.
	CtxRefreshedTokenMessage = "refreshedTokenMessage"

	// DefaultErrorMessage is returned for unmapped internal errors.
	DefaultErrorMessage = "Internal server error"
)
