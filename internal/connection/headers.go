package connection

import "net/http"

// Header names sent with every API request.
const (
	HeaderApplication = "X-PW-Application"
	HeaderAccessToken = "X-PW-AccessToken" //nolint:gosec // header name, not a credential
	HeaderUserEmail   = "X-PW-UserEmail"
	HeaderRequestID   = "X-Request-Id"
)

// applicationID identifies API clients to ProsperWorks.
const applicationID = "developer_api"

// authHeaders returns the persistent headers identifying email/token.
func authHeaders(email, token string) http.Header {
	h := make(http.Header, 5)
	h.Set(HeaderApplication, applicationID)
	h.Set(HeaderAccessToken, token)
	h.Set(HeaderUserEmail, email)
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	return h
}
