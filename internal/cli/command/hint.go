package command

import "github.com/yndnr/prospyr-go/internal/core/domain"

// Hint suggests a next step for errors the user can fix, or returns "".
func Hint(err error) string {
	switch {
	case domain.IsDomainError(err, domain.ErrMissingCredentials.Code):
		return "set email and token for the connection in the config file, or pass --email and --token"
	case domain.IsConfigurationError(err):
		return "run 'prospyr-cli connections validate' to check the configured connections"
	default:
		return ""
	}
}
