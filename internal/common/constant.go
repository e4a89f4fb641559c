package common

const (
	// AuthorizationHeaderName carries the bearer access token.
	AuthorizationHeaderName = "Authorization"

	// APIKeyHeaderName carries a caller-supplied model API key. It takes
	// precedence over the api_key field of a translate request body.
	APIKeyHeaderName = "X-API-KEY"

	// RequestIDHeaderName is echoed on every response.
	RequestIDHeaderName = "X-Request-ID"

	// TokenType is the token_type reported alongside issued access tokens.
	TokenType = "bearer"
)
