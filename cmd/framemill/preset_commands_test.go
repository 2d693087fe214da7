package main

import (
	"bytes"
	"strings"
	"testing"

	"framemill/internal/preset"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v: %v", args, err)
	}
	return buf.String()
}

func TestPresetListCommand(t *testing.T) {
	out := runCommand(t, "preset", "list")
	for _, name := range []string{"YouTube 1080p", "Master Quality", "Twitch Stream"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %q:\n%s", name, out)
		}
	}
}

func TestPresetListCategoryFilter(t *testing.T) {
	out := runCommand(t, "preset", "list", "--category", "FastEncoding")
	if !strings.Contains(out, "NVENC Fast") {
		t.Fatalf("filtered list missing fast preset:\n%s", out)
	}
	if strings.Contains(out, "YouTube 1080p") {
		t.Fatalf("filtered list leaked other categories:\n%s", out)
	}
}

func TestPresetShowCommand(t *testing.T) {
	out := runCommand(t, "preset", "show", "ProRes Proxy")
	if !strings.Contains(out, "prores_ks") {
		t.Fatalf("show output missing codec:\n%s", out)
	}
}

func TestPresetValidateCommand(t *testing.T) {
	out := runCommand(t, "preset", "validate", "YouTube 1080p")
	if !strings.Contains(out, "passed all compatibility checks") {
		t.Fatalf("validate output = %q", out)
	}
}

func TestFindBuiltinCaseInsensitive(t *testing.T) {
	p, err := findBuiltin("youtube 1080p")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.Name != "YouTube 1080p" {
		t.Fatalf("found %q", p.Name)
	}
	if _, err := findBuiltin("Nope"); err == nil {
		t.Fatal("unknown preset should error")
	}
}

func TestParseCategoryAcceptsDisplayName(t *testing.T) {
	c, err := parseCategory("Web Optimized")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != preset.WebOptimized {
		t.Fatalf("category = %v", c)
	}
	if _, err := parseCategory("Cinematic"); err == nil {
		t.Fatal("unknown category should error")
	}
}
