package main

import (
	"path/filepath"
	"strings"
	"testing"

	"framemill/internal/project"
)

func TestProjectNewAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wedding.json")

	out := runCommand(t, "project", "new", path, "--name", "Wedding Edit", "--operation", "VideoCompress")
	if !strings.Contains(out, "Wedding Edit") {
		t.Fatalf("new output = %q", out)
	}

	cfg, salvaged, err := project.Load(path)
	if err != nil {
		t.Fatalf("load created project: %v", err)
	}
	if salvaged {
		t.Fatal("fresh project should load strictly")
	}
	if cfg.ProjectName != "Wedding Edit" {
		t.Fatalf("name = %q", cfg.ProjectName)
	}

	show := runCommand(t, "project", "show", path)
	if !strings.Contains(show, "Wedding Edit") || !strings.Contains(show, "Video Compress") {
		t.Fatalf("show output missing fields:\n%s", show)
	}
}

func TestProjectNewRejectsUnknownOperation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	cmd := newRootCommand()
	cmd.SetArgs([]string{"project", "new", path, "--operation", "TeleportConvert"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("unknown operation should fail")
	}
}
