package templates

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/0xb0b1/academy/config"
	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/models"
)

func testPage(l i18n.Locale, path string, query url.Values) Page {
	catalog := i18n.NewCatalog(i18n.Embedded())
	return Page{
		Locale: l,
		T:      catalog.Bundle(string(l)),
		Site:   config.DefaultSite(),
		Path:   path,
		Query:  query,
		Now:    time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC),
	}
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func TestLocaleURL(t *testing.T) {
	tests := []struct {
		l     i18n.Locale
		path  string
		query url.Values
		want  string
	}{
		{i18n.FR, "/", nil, "/fr/"},
		{i18n.AR, "courses", nil, "/ar/courses"},
		{i18n.EN, "/blog", url.Values{"tag": {"go"}, "page": {"2"}}, "/en/blog?page=2&tag=go"},
	}
	for _, tt := range tests {
		if got := LocaleURL(tt.l, tt.path, tt.query); got != tt.want {
			t.Errorf("LocaleURL(%s, %q) = %q, want %q", tt.l, tt.path, got, tt.want)
		}
	}
}

func TestWithCopiesQuery(t *testing.T) {
	q := url.Values{"category": {"design"}, "page": {"3"}}

	next := with(q, "page", "4")
	if next.Get("page") != "4" || next.Get("category") != "design" {
		t.Fatalf("with = %v", next)
	}
	if q.Get("page") != "3" {
		t.Fatal("with modified its input")
	}
	if cleared := with(q, "page", ""); cleared.Has("page") {
		t.Fatalf("empty value kept: %v", cleared)
	}
}

func TestBaseEscapesAndSetsDirection(t *testing.T) {
	p := testPage(i18n.AR, "/faq", nil)
	out := renderString(t, Base(p, pageHeader("<script>alert(1)</script>", "")))
	if !strings.Contains(out, `<html lang="ar" dir="rtl">`) {
		t.Fatal("missing rtl html element")
	}
	if strings.Contains(out, "<script>") {
		t.Fatal("body text not escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatal("escaped body text missing")
	}
	if !strings.Contains(out, `href="/en/faq"`) {
		t.Fatal("missing switcher link to English")
	}
}

func TestBaseSanitizesSocialLinks(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		notWant string
	}{
		{"https kept", "https://www.linkedin.com/school/academy", `href="https://www.linkedin.com/school/academy"`, ""},
		{"javascript scheme replaced", "javascript:alert(1)", `href="` + string(templ.FailedSanitizationURL) + `"`, "javascript:"},
		{"quote in url escaped", `https://example.com/"onmouseover="x`, "&#34;onmouseover=&#34;", `"onmouseover="`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPage(i18n.EN, "/", nil)
			p.Site.Social = []config.SocialLink{{Name: "Profile", URL: tt.url}}
			out := renderString(t, Base(p, NotFound(p)))
			if !strings.Contains(out, tt.want) {
				t.Errorf("output does not contain %q", tt.want)
			}
			if tt.notWant != "" && strings.Contains(out, tt.notWant) {
				t.Errorf("output contains %q", tt.notWant)
			}
		})
	}
}

func TestCarouselWraps(t *testing.T) {
	p := testPage(i18n.EN, "/", nil)
	out := renderString(t, Carousel(p, models.Testimonials(), 0))
	last := itoa(len(models.Testimonials()) - 1)
	if !strings.Contains(out, `href="/en/?t=`+last+`#testimonials"`) {
		t.Fatalf("previous link does not wrap to %s", last)
	}
}

func TestCarouselEmpty(t *testing.T) {
	p := testPage(i18n.EN, "/", nil)
	for _, current := range []int{0, 3, -1} {
		if out := renderString(t, Carousel(p, nil, current)); out != "" {
			t.Errorf("Carousel(nil, %d) = %q, want empty", current, out)
		}
	}
}

func TestFAQOpensRequestedItem(t *testing.T) {
	p := testPage(i18n.FR, "/faq", nil)
	out := renderString(t, FAQ(p, models.FAQ(), 1))
	if !strings.Contains(out, `<details id="faq-1" open>`) {
		t.Fatal("item 1 not open")
	}
	if strings.Contains(out, `<details id="faq-0" open>`) {
		t.Fatal("item 0 open")
	}
}

func TestGalleryLightbox(t *testing.T) {
	p := testPage(i18n.EN, "/gallery", nil)
	photos := models.Gallery()

	if out := renderString(t, Gallery(p, photos, -1)); strings.Contains(out, "lightbox") {
		t.Fatal("lightbox shown without a photo")
	}
	out := renderString(t, Gallery(p, photos, 0))
	if !strings.Contains(out, `role="dialog"`) {
		t.Fatal("lightbox missing")
	}
	prev := `href="/en/gallery?photo=` + itoa(len(photos)-1) + `"`
	if !strings.Contains(out, prev) {
		t.Fatalf("previous link %s missing", prev)
	}
}
