package apiurl

import (
	"fmt"
	"net/url"
	"strings"
)

// Join resolves paths against base, left to right.
//
// A path beginning with "/" resets the result to that absolute path;
// any other path is appended to the current one. With no paths the
// result is an unchanged copy of base. Query and fragment are kept.
// base is never modified.
func Join(base *url.URL, paths ...string) *url.URL {
	joined := clone(base)
	decoded, escaped := joined.Path, joined.EscapedPath()

	for _, p := range paths {
		d, e := splitEscaped(p)
		if strings.HasPrefix(d, "/") {
			decoded, escaped = d, e
			continue
		}
		decoded = appendPath(decoded, d)
		escaped = appendPath(escaped, e)
	}

	setPath(joined, decoded, escaped)
	return joined
}

// JoinString is Join for a base given as a string.
func JoinString(base string, paths ...string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	return Join(u, paths...).String(), nil
}

// AddSegment appends exactly one path segment to base. Any "/" inside
// segment is encoded, so the path gains a single component.
func AddSegment(base *url.URL, segment string) *url.URL {
	u := clone(base)
	setPath(u,
		appendPath(u.Path, segment),
		appendPath(u.EscapedPath(), url.PathEscape(segment)),
	)
	return u
}

// splitEscaped returns the decoded and encoded forms of p. A p that is
// already validly percent-encoded keeps its encoding.
func splitEscaped(p string) (decoded, escaped string) {
	decoded, err := url.PathUnescape(p)
	if err != nil {
		decoded = p
	}
	escaped = (&url.URL{Path: decoded, RawPath: p}).EscapedPath()
	return decoded, escaped
}

// appendPath joins segment onto base with exactly one separating "/".
// An empty base yields an absolute path.
func appendPath(base, segment string) string {
	switch {
	case base == "":
		return "/" + segment
	case strings.HasSuffix(base, "/"):
		return base + segment
	default:
		return base + "/" + segment
	}
}

func setPath(u *url.URL, decoded, escaped string) {
	u.Path = decoded
	u.RawPath = escaped
	// Drop RawPath when it is the default encoding.
	if (&url.URL{Path: decoded}).EscapedPath() == escaped {
		u.RawPath = ""
	}
}

func clone(u *url.URL) *url.URL {
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}
