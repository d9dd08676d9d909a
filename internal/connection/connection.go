package connection

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/yndnr/prospyr-go/internal/apiurl"
)

// Connection is an authenticated handle to one ProsperWorks account.
// It is created by Registry.Connect and is read-only afterwards.
type Connection struct {
	email   string
	baseURL *url.URL
	apiURL  *url.URL
	session *Session
}

func newConnection(email string, baseURL *url.URL, version string, session *Session) *Connection {
	return &Connection{
		email:   email,
		baseURL: baseURL,
		apiURL:  apiurl.AddSegment(baseURL, version),
		session: session,
	}
}

// Email returns the account email the connection authenticates as.
func (c *Connection) Email() string {
	return c.email
}

// BaseURL returns a copy of the URL the connection was created with.
func (c *Connection) BaseURL() *url.URL {
	return apiurl.Join(c.baseURL)
}

// APIURL returns a copy of the versioned API root, e.g.
// https://api.prosperworks.com/developer_api/v1.
func (c *Connection) APIURL() *url.URL {
	return apiurl.Join(c.apiURL)
}

// Session returns the session carrying the connection's credentials.
func (c *Connection) Session() *Session {
	return c.session
}

// BuildAbsoluteURL resolves path against the API URL. A path starting
// with "/" replaces the API path entirely.
func (c *Connection) BuildAbsoluteURL(path string) *url.URL {
	return apiurl.Join(c.apiURL, path)
}

// HTTPMethod sends a request with the given method to rawURL, which is
// used exactly as given.
func (c *Connection) HTTPMethod(ctx context.Context, method, rawURL string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	return c.session.Do(ctx, method, rawURL, body, opts...)
}

// Get sends a GET request to rawURL.
func (c *Connection) Get(ctx context.Context, rawURL string, opts ...RequestOption) (*http.Response, error) {
	return c.HTTPMethod(ctx, http.MethodGet, rawURL, nil, opts...)
}

// Post sends a POST request with body to rawURL.
func (c *Connection) Post(ctx context.Context, rawURL string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	return c.HTTPMethod(ctx, http.MethodPost, rawURL, body, opts...)
}

// Put sends a PUT request with body to rawURL.
func (c *Connection) Put(ctx context.Context, rawURL string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	return c.HTTPMethod(ctx, http.MethodPut, rawURL, body, opts...)
}

// Patch sends a PATCH request with body to rawURL.
func (c *Connection) Patch(ctx context.Context, rawURL string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	return c.HTTPMethod(ctx, http.MethodPatch, rawURL, body, opts...)
}

// Delete sends a DELETE request to rawURL.
func (c *Connection) Delete(ctx context.Context, rawURL string, opts ...RequestOption) (*http.Response, error) {
	return c.HTTPMethod(ctx, http.MethodDelete, rawURL, nil, opts...)
}

// Options sends an OPTIONS request to rawURL.
func (c *Connection) Options(ctx context.Context, rawURL string, opts ...RequestOption) (*http.Response, error) {
	return c.HTTPMethod(ctx, http.MethodOptions, rawURL, nil, opts...)
}
