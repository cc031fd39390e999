package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xb0b1/academy/i18n"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("academy", flag.ContinueOnError)
	cfg, err := ParseWith(fs, nil, map[string]string{})
	if err != nil {
		t.Fatalf("ParseWith() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.DataDir != "data" {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, "data")
	}
	if cfg.PostsPerPage != 6 || cfg.CoursesPerPage != 6 {
		t.Fatalf("per page = %d/%d, want 6/6", cfg.PostsPerPage, cfg.CoursesPerPage)
	}
	if cfg.LocalesDir != "" || cfg.OTelEndpoint != "" {
		t.Fatalf("optional settings should be empty: %+v", cfg)
	}
}

func TestParseEnvironment(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("academy", flag.ContinueOnError)
	cfg, err := ParseWith(fs, nil, map[string]string{
		"ACADEMY_HTTP_ADDR":      ":9000",
		"ACADEMY_POSTS_PER_PAGE": "3",
		"ACADEMY_OTEL_ENDPOINT":  "http://collector:4318",
	})
	if err != nil {
		t.Fatalf("ParseWith() error = %v", err)
	}
	if cfg.HTTPAddr != ":9000" || cfg.PostsPerPage != 3 || cfg.OTelEndpoint != "http://collector:4318" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseFlagOverridesEnvironment(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("academy", flag.ContinueOnError)
	cfg, err := ParseWith(fs, []string{"-http-addr", "127.0.0.1:9002"}, map[string]string{
		"ACADEMY_HTTP_ADDR": ":9000",
	})
	if err != nil {
		t.Fatalf("ParseWith() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]string{
		"not a number": {"ACADEMY_POSTS_PER_PAGE": "many"},
		"zero":         {"ACADEMY_COURSES_PER_PAGE": "0"},
	}
	for name, environment := range tests {
		t.Run(name, func(t *testing.T) {
			fs := flag.NewFlagSet("academy", flag.ContinueOnError)
			if _, err := ParseWith(fs, nil, environment); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadSiteMissingFileUsesDefaults(t *testing.T) {
	site := LoadSite(filepath.Join(t.TempDir(), "missing.toml"))
	if site.Name != DefaultSite().Name {
		t.Fatalf("Name = %q, want default", site.Name)
	}
}

func TestLoadSiteInvalidFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	if err := os.WriteFile(path, []byte("name = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if site := LoadSite(path); site.Email != DefaultSite().Email {
		t.Fatalf("Email = %q, want default", site.Email)
	}
}

func TestLoadSiteMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	body := "name = \"Atlas\"\n\n[tagline]\nfr = \"Métiers\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	site := LoadSite(path)
	if site.Name != "Atlas" {
		t.Fatalf("Name = %q, want Atlas", site.Name)
	}
	if site.Phone != DefaultSite().Phone {
		t.Fatalf("Phone = %q, want default", site.Phone)
	}
	if got := site.TaglineIn(i18n.AR); got != "Métiers" {
		t.Fatalf("TaglineIn(ar) = %q, want French fallback", got)
	}
}

func TestBundledSiteFileParses(t *testing.T) {
	site := LoadSite("site.toml")
	if len(site.Social) != 3 {
		t.Fatalf("len(Social) = %d, want 3", len(site.Social))
	}
	if site.TaglineIn(i18n.AR) != "التكوين المهني" {
		t.Fatalf("TaglineIn(ar) = %q", site.TaglineIn(i18n.AR))
	}
}
