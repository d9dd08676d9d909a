package command

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers and readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// runApp runs prospyr-cli in-process and returns what it wrote.
func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out, errOut := &syncBuffer{}, &syncBuffer{}
	err = runAppContext(context.Background(), out, errOut, args...)
	return out.String(), errOut.String(), err
}

func runAppContext(ctx context.Context, stdout, stderr *syncBuffer, args ...string) error {
	app := App()
	app.Writer = stdout
	app.ErrWriter = stderr
	return app.RunContext(ctx, append([]string{"prospyr-cli"}, args...))
}

// writeConfig writes a cli.yaml into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// profileYAML renders a connections block entry.
func profileYAML(name, email, token, url string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s:\n    email: %s\n    token: %s\n", name, email, token)
	if url != "" {
		fmt.Fprintf(&b, "    url: %s\n", url)
	}
	return b.String()
}

// apiServer records the last request it served.
type apiServer struct {
	*httptest.Server
	mu   sync.Mutex
	last *http.Request
	body string
}

func newAPIServer(t *testing.T, handler http.HandlerFunc) *apiServer {
	t.Helper()
	s := &apiServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r.Body)
		s.mu.Lock()
		s.last = r
		s.body = buf.String()
		s.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *apiServer) lastRequest() (*http.Request, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.body
}
