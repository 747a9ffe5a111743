package common

// Header names attached to outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "
