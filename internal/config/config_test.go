package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/prospyr-go/internal/core/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "table" {
		t.Errorf("Output = %q, want table", cfg.Output)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("HTTP.Timeout = %v, want 30s", cfg.HTTP.Timeout)
	}
	if cfg.Connections == nil || len(cfg.Connections) != 0 {
		t.Errorf("Connections should be empty and non-nil, got %v", cfg.Connections)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !filepath.IsAbs(path) {
		t.Errorf("path %q should be absolute", path)
	}
	if !strings.HasSuffix(path, filepath.Join(".prospyr", "cli.yaml")) {
		t.Errorf("path %q should end with .prospyr/cli.yaml", path)
	}
}

func TestProfileDefaults(t *testing.T) {
	p := Profile{Email: "a@b.com", Token: "t"}
	if p.BaseURL() != DefaultURL {
		t.Errorf("BaseURL() = %q, want %q", p.BaseURL(), DefaultURL)
	}
	if p.APIVersion() != "v1" {
		t.Errorf("APIVersion() = %q, want v1", p.APIVersion())
	}

	p.URL, p.Version = "https://x.com/", "v2"
	if p.BaseURL() != "https://x.com/" || p.APIVersion() != "v2" {
		t.Errorf("explicit values not returned: %q %q", p.BaseURL(), p.APIVersion())
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err != nil {
		t.Fatalf("Load should not error for nonexistent file: %v", err)
	}
	if cfg.Output != "table" {
		t.Error("Should return default config for nonexistent file")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	content := `
output: json
http:
  timeout: 10s
connections:
  default:
    email: a@b.com
    token: secret
  sandbox:
    email: c@d.com
    token: other
    url: https://sandbox.example.com/developer_api/
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.HTTP.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.HTTP.Timeout)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want default warn", cfg.Log.Level)
	}
	if names := cfg.ProfileNames(); len(names) != 2 || names[0] != "default" || names[1] != "sandbox" {
		t.Errorf("ProfileNames() = %v", names)
	}
	if got := cfg.Connections["sandbox"].URL; got != "https://sandbox.example.com/developer_api/" {
		t.Errorf("sandbox URL = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	t.Setenv("PROSPYR_CONNECTIONS__DEFAULT__EMAIL", "env@b.com")
	t.Setenv("PROSPYR_CONNECTIONS__DEFAULT__TOKEN", "env-token")
	t.Setenv("PROSPYR_OUTPUT", "yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), map[string]any{"output": "json"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json (override beats env)", cfg.Output)
	}
	p := cfg.Connections["default"]
	if p.Email != "env@b.com" || p.Token != "env-token" {
		t.Errorf("default profile = %+v", p)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Output = "xml"
	cfg.Connections["good"] = Profile{Email: "a@b.com", Token: "t"}
	cfg.Connections["nocreds"] = Profile{Email: "a@b.com"}
	cfg.Connections["versioned"] = Profile{Email: "a@b.com", Token: "t", URL: "https://x.com/v1/"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	msg := err.Error()
	for _, want := range []string{"xml", `"nocreds"`, `"versioned"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %s", msg, want)
		}
	}
	if strings.Contains(msg, `"good"`) {
		t.Errorf("error %q should not mention the valid profile", msg)
	}
	if !domain.IsConfigurationError(err) {
		t.Error("joined error should match ErrConfiguration")
	}
	if !errors.Is(err, domain.ErrMissingCredentials) {
		t.Error("joined error should contain ErrMissingCredentials")
	}
}
