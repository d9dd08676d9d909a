package connection

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/prospyr-go/internal/telemetry/logger"
)

// Session is an HTTP client with headers applied to every request.
// It is safe for concurrent use.
type Session struct {
	client  *http.Client
	headers http.Header
	logger  logger.Logger
}

// RequestOption customises a single request.
type RequestOption func(*http.Request)

// WithHeader sets a header on the request, overriding a session header.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// WithQuery adds a query parameter to the request URL.
func WithQuery(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

func newSession(client *http.Client, headers http.Header, log logger.Logger) *Session {
	return &Session{
		client:  client,
		headers: headers,
		logger:  log,
	}
}

// Headers returns a copy of the persistent headers.
func (s *Session) Headers() http.Header {
	return s.headers.Clone()
}

// Client returns the underlying HTTP client.
func (s *Session) Client() *http.Client {
	return s.client
}

// Do sends a request with the session headers to rawURL, used verbatim.
// Each request carries an X-Request-Id unless opts set one; the request
// context carries the session logger and that id, so logger.L on
// req.Context() inside a transport logs with the id attached. The response
// and any transport error are returned as the client produced them.
func (s *Session) Do(ctx context.Context, method, rawURL string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for key, values := range s.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	for _, opt := range opts {
		opt(req)
	}

	reqID := req.Header.Get(HeaderRequestID)
	if reqID == "" {
		reqID = ulid.Make().String()
		req.Header.Set(HeaderRequestID, reqID)
	}
	ctx = logger.WithRequestID(logger.WithLogger(ctx, s.logger), reqID)
	req = req.WithContext(ctx)

	log := logger.L(ctx).With("method", method, "url", req.URL.String())
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		log.Debug("request failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	log.Debug("request completed", "status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}
