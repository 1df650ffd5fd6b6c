package response

import pkgErrors "ledgerly-api/pkg/errors"

// Resp is the wire envelope shared by every endpoint. RefreshedTokenMessage
// carries the access-token renewal notice and is echoed on success and
// failure alike so clients always learn about a silent refresh.
type Resp struct {
	Data                  any    `json:"data,omitempty"`
	Error                 string `json:"error,omitempty"`
	RefreshedTokenMessage string `json:"refreshedTokenMessage,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors.
type ErrorMapping map[error]*pkgErrors.HTTPError
