package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Makepad-fr/bmi/internal/model"
)

// isolate keeps Load from picking up a config.yml outside the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		Units:         model.Metric,
		Locale:        "en",
		Theme:         "classic",
		FlashDuration: DefaultFlashDuration,
		LogLevel:      "info",
		LogFile:       "",
		ExportPath:    DefaultExportPath,
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	p := writeConfig(t, dir, `units: imperial
locale: sq
theme: mono
flash_duration: 5s
log:
  level: debug
  file: bmi.log
export:
  path: out/history.json
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Units != model.Imperial || cfg.Locale != "sq" || cfg.Theme != "mono" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.FlashDuration != 5*time.Second {
		t.Errorf("FlashDuration = %v, want 5s", cfg.FlashDuration)
	}
	if cfg.LogLevel != "debug" || cfg.LogFile != "bmi.log" || cfg.ExportPath != "out/history.json" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadSearchesWorkingDir(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "units: imperial\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Units != model.Imperial {
		t.Errorf("Units = %v, want imperial", cfg.Units)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	p := writeConfig(t, dir, "locale: en\nlog:\n  level: debug\n")
	t.Setenv("BMI_LOCALE", "sq")
	t.Setenv("BMI_LOG_LEVEL", "warn")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Locale != "sq" || cfg.LogLevel != "warn" {
		t.Errorf("Load() = %+v, want env values", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad units", "units: furlongs\n"},
		{"bad locale", "locale: xx\n"},
		{"bad theme", "theme: plaid\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"zero flash", "flash_duration: 0s\n"},
		{"empty export", "export:\n  path: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			p := writeConfig(t, dir, tt.body)
			if _, err := Load(p); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "nope.yml")); err == nil {
		t.Error("Load() of a missing explicit file should fail")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
