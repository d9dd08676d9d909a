package command

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yndnr/prospyr-go/internal/core/domain"
)

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing credentials", fmt.Errorf("connection %q: %w", "eu", domain.ErrMissingCredentials), "--email and --token"},
		{"configuration", domain.ErrConfiguration.WithDetails("bad url"), "connections validate"},
		{"joined", errors.Join(errors.New("x"), domain.ErrConfiguration), "connections validate"},
		{"duplicate", domain.ErrDuplicateConnection, ""},
		{"plain", errors.New("boom"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(tt.err)
			if tt.want == "" && got != "" {
				t.Errorf("Hint() = %q, want none", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Hint() = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}

func TestHint_UnknownConnection(t *testing.T) {
	path := writeConfig(t, "output: table\n")
	_, _, err := runApp(t, "--config", path, "-n", "eu", "url", "people")
	if err == nil {
		t.Fatal("url with an unknown connection should fail")
	}
	if !strings.Contains(Hint(err), "connections validate") {
		t.Errorf("Hint(%v) = %q", err, Hint(err))
	}
}
