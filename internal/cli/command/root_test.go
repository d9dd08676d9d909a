package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "prospyr-cli" {
		t.Errorf("Name = %q, want prospyr-cli", app.Name)
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"connections", "url", "request", "watch", "shell", "version"} {
		if !names[want] {
			t.Errorf("missing command %q", want)
		}
	}

	flags := make(map[string]bool)
	for _, f := range app.Flags {
		flags[f.Names()[0]] = true
	}
	for _, want := range []string{"config", "connection", "output", "log-level", "email", "token"} {
		if !flags[want] {
			t.Errorf("missing global flag %q", want)
		}
	}
}

func TestApp_UnknownOutputFormat(t *testing.T) {
	path := writeConfig(t, "")
	_, _, err := runApp(t, "--config", path, "--output", "xml", "version")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("err = %v, want unknown output format", err)
	}
}

func TestApp_OutputFromConfigFile(t *testing.T) {
	path := writeConfig(t, "output: json\n")
	stdout, _, err := runApp(t, "--config", path, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(stdout, `"version":`) {
		t.Errorf("stdout = %q, want JSON build info", stdout)
	}
}

func TestApp_FlagOverridesConfigFile(t *testing.T) {
	path := writeConfig(t, "output: json\n")
	stdout, _, err := runApp(t, "--config", path, "-o", "yaml", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(stdout, "version: ") || strings.Contains(stdout, "{") {
		t.Errorf("stdout = %q, want YAML build info", stdout)
	}
}

func TestApp_MissingConfigFileIsFine(t *testing.T) {
	stdout, _, err := runApp(t, "--config", t.TempDir()+"/absent.yaml", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "prospyr-cli ") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestSelected_CommandLineCredentials(t *testing.T) {
	path := writeConfig(t, "")

	stdout, _, err := runApp(t, "--config", path,
		"--email", "a@b.com", "--token", "t", "--url", "https://x.com/",
		"url", "widgets")
	if err != nil {
		t.Fatalf("url error = %v", err)
	}
	if strings.TrimSpace(stdout) != "https://x.com/v1/widgets" {
		t.Errorf("stdout = %q", stdout)
	}

	_, _, err = runApp(t, "--config", path, "--email", "a@b.com", "url", "widgets")
	if err == nil || !strings.Contains(err.Error(), "--token") {
		t.Errorf("err = %v, want credentials pairing error", err)
	}
}

func TestExitCodes(t *testing.T) {
	_, _, err := runApp(t, "--config", writeConfig(t, ""), "url")
	var ec cli.ExitCoder
	if !errors.As(err, &ec) || ec.ExitCode() != 2 {
		t.Errorf("err = %v, want exit code 2", err)
	}
}
