package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactSensitive_KeyNames(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		redacted bool
	}{
		{"token", "abc", true},
		{"X-PW-AccessToken", "0123456789abcdef0123", true},
		{"api_key", "k", true},
		{"password", "p", true},
		{"email", "a@b.com", false},
		{"url", "https://x.com/v1", false},
		{"token", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got := redactSensitive(slog.String(tt.key, tt.value)).Value.String()
			if tt.redacted && got == tt.value {
				t.Errorf("%s should be redacted, got %q", tt.key, got)
			}
			if !tt.redacted && got != tt.value {
				t.Errorf("%s should be kept, got %q", tt.key, got)
			}
		})
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	a := slog.Group("auth_headers", slog.String("token", "secret-token"), slog.String("email", "a@b.com"))
	got := redactSensitive(a)

	attrs := got.Value.Group()
	if attrs[0].Value.String() == "secret-token" {
		t.Error("nested token should be redacted")
	}
	if attrs[1].Value.String() != "a@b.com" {
		t.Error("nested email should be kept")
	}
}

func TestRedaction_EndToEnd(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Output: &buf})

	l.Info("connect", "email", "a@b.com", "token", "super-secret-access-token")

	out := buf.String()
	if strings.Contains(out, "super-secret-access-token") {
		t.Errorf("token leaked into output: %s", out)
	}
	if !strings.Contains(out, "a@b.com") {
		t.Errorf("email missing from output: %s", out)
	}
}

func TestMaskValue(t *testing.T) {
	if got := MaskValue("short"); got != redactedValue {
		t.Errorf("MaskValue(short) = %q", got)
	}
	if got := MaskValue("0123456789abcdefWXYZ"); got != "***WXYZ" {
		t.Errorf("MaskValue(long) = %q, want ***WXYZ", got)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	if !IsSensitiveKey("AccessToken") {
		t.Error("AccessToken should be sensitive")
	}
	if IsSensitiveKey("email") {
		t.Error("email should not be sensitive")
	}
}
