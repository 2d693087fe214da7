package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Encoder.Binary != "ffmpeg" {
		t.Fatalf("encoder binary = %q", cfg.Encoder.Binary)
	}
	if !cfg.History.Enabled || cfg.History.MaxEntries != 500 {
		t.Fatalf("history defaults = %v/%d", cfg.History.Enabled, cfg.History.MaxEntries)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("exists should be false for a missing file")
	}
	if path == "" {
		t.Fatal("resolved path should still be reported")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("level = %q, want default", cfg.Logging.Level)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[paths]
projects_dir = "` + dir + `/projects"
presets_dir = "` + dir + `/presets"
data_dir = "` + dir + `/data"
log_dir = "` + dir + `/logs"

[encoder]
binary = " ffmpeg6 "
hardware_encoders = ["h264_nvenc"]

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Encoder.Binary != "ffmpeg6" {
		t.Fatalf("binary not trimmed: %q", cfg.Encoder.Binary)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not lowercased: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
	if len(cfg.Encoder.HardwareEncoders) != 1 || cfg.Encoder.HardwareEncoders[0] != "h264_nvenc" {
		t.Fatalf("hardware encoders = %v", cfg.Encoder.HardwareEncoders)
	}
	if cfg.HistoryDBPath() != filepath.Join(dir, "data", "history.db") {
		t.Fatalf("history db path = %q", cfg.HistoryDBPath())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad format": "[logging]\nformat = \"xml\"\n",
		"bad level":  "[logging]\nlevel = \"loud\"\n",
		"no binary":  "[encoder]\nbinary = \"\"\n",
		"negative":   "[history]\nmax_entries = -1\n",
	}
	for name, contents := range cases {
		path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".toml")
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, _, _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/nested/dir")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "nested", "dir") {
		t.Fatalf("expanded = %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if !exists {
		t.Fatal("sample file should exist")
	}
	defaults := Default()
	if cfg.Encoder.Binary != defaults.Encoder.Binary {
		t.Fatalf("sample binary = %q, want default", cfg.Encoder.Binary)
	}
	if cfg.History.MaxEntries != defaults.History.MaxEntries {
		t.Fatalf("sample max_entries = %d, want default", cfg.History.MaxEntries)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.ProjectsDir = filepath.Join(base, "projects")
	cfg.Paths.PresetsDir = filepath.Join(base, "presets")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for _, dir := range []string{cfg.Paths.ProjectsDir, cfg.Paths.PresetsDir, cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %q missing: %v", dir, err)
		}
	}
}
