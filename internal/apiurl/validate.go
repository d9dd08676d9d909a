package apiurl

import (
	"net/url"
	"regexp"

	"github.com/yndnr/prospyr-go/internal/core/domain"
)

// versionSegment matches a pre-supplied version path component such as "/v1".
var versionSegment = regexp.MustCompile(`/v\d+`)

// Validate checks that rawURL can serve as a connection base URL.
//
// The URL must use http or https, must name a host, and must not already
// contain a version segment, since the version is appended when a
// connection is built. The first failing check is returned as an
// ErrConfiguration naming the URL; nil means the URL is valid.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.ErrConfiguration.
			WithDetailsf("API URL `%s` cannot be parsed", rawURL).
			WithCause(err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return domain.ErrConfiguration.
			WithDetailsf("API URL `%s` must include a scheme (http, https)", rawURL)
	}

	if u.Hostname() == "" {
		return domain.ErrConfiguration.
			WithDetailsf("API URL `%s` must include a hostname", rawURL)
	}

	if versionSegment.MatchString(u.Path) {
		return domain.ErrConfiguration.
			WithDetailsf("API URL `%s` should not include a \"version\" path segment", rawURL)
	}

	return nil
}
