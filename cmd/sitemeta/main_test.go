package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chalvinwz/sitemeta"
)

func clearSiteEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SITE_TITLE", "SITE_AUTHOR", "SITE_HEADER_TITLE", "SITE_DESCRIPTION",
		"SITE_LANGUAGE", "SITE_LOCALE", "SITE_THEME", "SITE_URL", "SITE_REPO",
		"SITE_LOGO", "SITE_SOCIAL_BANNER", "SITE_MASTODON", "SITE_EMAIL",
		"SITE_GITHUB", "SITE_LINKEDIN", "SITE_INSTAGRAM",
	} {
		t.Setenv(k, "")
	}
}

func TestRunInitScaffoldsLoadableConfig(t *testing.T) {
	clearSiteEnv(t)
	dir := filepath.Join(t.TempDir(), "my-site")

	var out bytes.Buffer
	if err := runInit(&out, dir); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
	for _, name := range []string{"site.yaml", ".env.example", filepath.Join("public", "static", "images", "README.md")} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "created") {
		t.Errorf("output = %q", out.String())
	}

	meta, err := sitemeta.Load(filepath.Join(dir, "site.yaml"))
	if err != nil {
		t.Fatalf("Load scaffolded site.yaml: %v", err)
	}
	if meta.Title != "My Site" || meta.HeaderTitle != "My Site" {
		t.Errorf("Title/HeaderTitle = %q/%q, want My Site", meta.Title, meta.HeaderTitle)
	}
	if err := sitemeta.Check(meta); err != nil {
		t.Errorf("scaffolded metadata should pass check: %v", err)
	}
}

func TestRunInitRefusesExistingDir(t *testing.T) {
	if err := runInit(&bytes.Buffer{}, t.TempDir()); err == nil {
		t.Fatal("expected error for existing directory")
	}
}

func TestRunExportStdout(t *testing.T) {
	clearSiteEnv(t)
	var out bytes.Buffer
	if err := runExport(&out, "", "js", ""); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}
	if !strings.HasSuffix(out.String(), "module.exports = siteMetadata\n") {
		t.Errorf("unexpected js output:\n%s", out.String())
	}
}

func TestRunExportToFile(t *testing.T) {
	clearSiteEnv(t)
	path := filepath.Join(t.TempDir(), "site-metadata.json")
	var out bytes.Buffer
	if err := runExport(&out, "", "json", path); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"siteUrl": "https://chalvinwz.vercel.app"`) {
		t.Errorf("file content = %s", data)
	}
	if !strings.Contains(out.String(), "wrote "+path) {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunExportUnknownFormat(t *testing.T) {
	err := runExport(&bytes.Buffer{}, "", "toml", "")
	if !errors.Is(err, sitemeta.ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestRunCheck(t *testing.T) {
	clearSiteEnv(t)
	var out bytes.Buffer
	if err := runCheck(&out, ""); err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "ok: 16 fields checked") {
		t.Errorf("output = %q", out.String())
	}

	t.Setenv("SITE_THEME", "neon")
	out.Reset()
	err := runCheck(&out, "")
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("err = %v, want errCheckFailed", err)
	}
	if !strings.Contains(out.String(), "theme") {
		t.Errorf("output should list the theme violation, got %q", out.String())
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"my-blog", "My Blog"},
		{"myblog", "Myblog"},
		{"a-b-c", "A B C"},
	}
	for _, tt := range tests {
		if got := toTitle(tt.input); got != tt.expected {
			t.Errorf("toTitle(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
