// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "config.yaml")
	writeFile(t, yamlPath, "session: runs/s1.json\nbaselineToken: Nvidia\ndebug: true\n")
	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load() with valid yaml failed: %v", err)
	}
	if cfg.SessionPath() != "runs/s1.json" {
		t.Fatalf("expected session override, got %q", cfg.SessionPath())
	}
	if cfg.Baseline() != "Nvidia" {
		t.Fatalf("expected baseline Nvidia, got %q", cfg.Baseline())
	}
	if cfg.Level() != "debug" {
		t.Fatalf("debug mode should force debug level, got %q", cfg.Level())
	}
	if cfg.ModelConfigPath() != DefaultModelConfigPath {
		t.Fatalf("expected default model config, got %q", cfg.ModelConfigPath())
	}
	if cfg.ConfigPath != yamlPath {
		t.Fatalf("expected config path %q, got %q", yamlPath, cfg.ConfigPath)
	}

	jsonPath := filepath.Join(dir, "config.json")
	writeFile(t, jsonPath, `{"logLevel": "warn", "export": "out.xlsx"}`)
	cfg, err = Load(jsonPath)
	if err != nil {
		t.Fatalf("Load() with valid json failed: %v", err)
	}
	if cfg.Level() != "warn" || cfg.ExportPath != "out.xlsx" {
		t.Fatalf("unexpected json config: %+v", cfg)
	}

	badPath := filepath.Join(dir, "bad.json")
	writeFile(t, badPath, `{ "session": [`)
	if _, err := Load(badPath); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	if _, err := Load(filepath.Join(dir, "nonexistent.yaml")); err == nil {
		t.Fatal("Load() with nonexistent explicit file should have failed")
	}
}

func TestLoadDefaultPathMissingUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigPath != "" {
		t.Fatalf("expected no config path, got %q", cfg.ConfigPath)
	}
	if cfg.SessionPath() != DefaultSessionPath || cfg.Baseline() != DefaultBaselineToken {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.LogFilePath() != "gpubench.log" || cfg.Level() != "info" {
		t.Fatalf("unexpected log defaults: %q %q", cfg.LogFilePath(), cfg.Level())
	}
}

func TestLoadDefaultPathPresent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultConfigPath), "reportPath: report.md\n")
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ReportPath != "report.md" {
		t.Fatalf("expected reportPath from default file, got %q", cfg.ReportPath)
	}
	if cfg.ConfigPath != DefaultConfigPath {
		t.Fatalf("expected config path %q, got %q", DefaultConfigPath, cfg.ConfigPath)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", Config{Session: "s.json"})
	out := buf.String()
	for _, want := range []string{
		"No config file loaded (using defaults).",
		"Session:         s.json",
		"Baseline Vendor: h3c",
		"Log Level:       info",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.yaml", Config{})
	if !strings.HasPrefix(buf.String(), "Config file: config/config.yaml\n\n") {
		t.Fatalf("unexpected header: %q", buf.String())
	}

	buf.Reset()
	DumpConfig(&buf, Config{BaselineToken: "h3c"})
	if !strings.Contains(buf.String(), "BaselineToken") {
		t.Fatalf("expected field dump, got %q", buf.String())
	}
}

func TestReadExplicitAndOverride(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "typo.yaml")

	if _, err := Read(viper.New(), missing, true); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
	cfg, err := Read(viper.New(), missing, false)
	if err != nil {
		t.Fatalf("missing default config should fall back to defaults: %v", err)
	}
	if cfg.ConfigPath != "" || cfg.Baseline() != DefaultBaselineToken {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "logLevel: warn\nbaselineToken: nvidia\n")
	v := viper.New()
	v.Set("baselineToken", "acme")
	cfg, err = Read(v, path, true)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if cfg.Level() != "warn" {
		t.Fatalf("expected file log level, got %q", cfg.Level())
	}
	if cfg.Baseline() != "acme" {
		t.Fatalf("expected override to win over the file, got %q", cfg.Baseline())
	}
}
