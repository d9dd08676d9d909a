package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("PW-TEST-1000", "test message"),
			expected: "[PW-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("PW-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[PW-TEST-1001] test message: extra info",
		},
		{
			name:     "error with formatted details",
			err:      ErrConfiguration.WithDetailsf("API URL `%s` must include a hostname", "https:///x"),
			expected: "[PW-CONF-4000] invalid configuration: API URL `https:///x` must include a hostname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err1 := NewDomainError("PW-TEST-1000", "message 1")
	err2 := NewDomainError("PW-TEST-1000", "message 2") // Same code, different message
	err3 := NewDomainError("PW-TEST-1001", "message 1") // Different code

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-DomainError")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := NewDomainError("PW-TEST-1000", "wrapper").WithCause(cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := NewDomainError("PW-TEST-1000", "no cause")
	if errors.Unwrap(errNoCause) != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestDomainError_WithDetails(t *testing.T) {
	original := NewDomainError("PW-TEST-1000", "original message")
	withDetails := original.WithDetails("additional details")

	if original.Details != "" {
		t.Error("WithDetails should not modify original error")
	}
	if withDetails.Details != "additional details" {
		t.Errorf("Details = %q, want %q", withDetails.Details, "additional details")
	}
	if withDetails.Code != original.Code || withDetails.Message != original.Message {
		t.Error("WithDetails should preserve code and message")
	}
}

func TestIsDomainError(t *testing.T) {
	err := ErrDuplicateConnection.WithDetails("`default` is already connected")

	if !IsDomainError(err, "PW-CONN-4090") {
		t.Error("IsDomainError should return true for matching code")
	}
	if IsDomainError(err, "PW-CONN-9999") {
		t.Error("IsDomainError should return false for non-matching code")
	}
	if !IsDomainError(err, "") {
		t.Error("IsDomainError with empty code should match any DomainError")
	}
	if IsDomainError(fmt.Errorf("regular error"), "PW-CONN-4090") {
		t.Error("IsDomainError should return false for non-DomainError")
	}

	wrapped := fmt.Errorf("wrapped: %w", err)
	if !IsDomainError(wrapped, "PW-CONN-4090") {
		t.Error("IsDomainError should work with wrapped errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"domain error", ErrConfiguration, "PW-CONF-4000"},
		{"wrapped domain error", fmt.Errorf("wrapped: %w", ErrDuplicateConnection), "PW-CONN-4090"},
		{"regular error", fmt.Errorf("regular error"), ""},
		{"nil error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	conf := fmt.Errorf("connect: %w", ErrConfiguration.WithDetails("no scheme"))
	dup := ErrDuplicateConnection.WithDetails("taken")

	if !IsConfigurationError(conf) {
		t.Error("IsConfigurationError should match wrapped ErrConfiguration")
	}
	if IsConfigurationError(dup) {
		t.Error("IsConfigurationError should not match ErrDuplicateConnection")
	}
	if !IsDuplicateConnection(dup) {
		t.Error("IsDuplicateConnection should match ErrDuplicateConnection")
	}
	if IsDuplicateConnection(conf) {
		t.Error("IsDuplicateConnection should not match ErrConfiguration")
	}
	if IsConfigurationError(ErrMissingCredentials) {
		t.Error("ErrMissingCredentials has its own code")
	}
}
