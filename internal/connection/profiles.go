package connection

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yndnr/prospyr-go/internal/config"
	"github.com/yndnr/prospyr-go/internal/core/domain"
)

// ConnectProfiles connects every profile whose name is not yet
// registered and returns the names it added, sorted. Names already in
// the registry are skipped, so loading the same profiles twice is a
// no-op. Failures do not stop the remaining profiles; they are returned
// joined.
func (r *Registry) ConnectProfiles(profiles map[string]config.Profile) ([]string, error) {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		added []string
		errs  []error
	)
	for _, name := range names {
		if _, ok := r.conns.Get(name); ok {
			r.logger.Debug("profile already connected", "name", name)
			continue
		}

		p := profiles[name]
		if p.Email == "" || p.Token == "" {
			errs = append(errs, fmt.Errorf("connection %q: %w", name,
				domain.ErrMissingCredentials.WithDetails("email and token are required")))
			continue
		}

		_, err := r.Connect(p.Email, p.Token,
			WithName(name),
			WithURL(p.BaseURL()),
			WithVersion(p.APIVersion()),
		)
		if err != nil {
			errs = append(errs, fmt.Errorf("connection %q: %w", name, err))
			continue
		}
		added = append(added, name)
	}

	return added, errors.Join(errs...)
}
