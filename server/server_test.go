package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/0xb0b1/academy/config"
	"github.com/0xb0b1/academy/content"
	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/models"
	"github.com/0xb0b1/academy/storage"
	"github.com/0xb0b1/academy/telemetry"
)

var today = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

type testSite struct {
	handler http.Handler
	inbox   *storage.Inbox
}

func newTestSite(t *testing.T) testSite {
	t.Helper()
	blog, err := models.LoadBlog(content.FS)
	if err != nil {
		t.Fatalf("LoadBlog: %v", err)
	}
	inbox, err := storage.NewInbox(filepath.Join(t.TempDir(), "inbox.json"))
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}
	h := New(Options{
		Catalog:        i18n.NewCatalog(i18n.Embedded()),
		Site:           config.DefaultSite(),
		Blog:           blog,
		Inbox:          inbox,
		Metrics:        telemetry.NewMetrics(),
		PostsPerPage:   6,
		CoursesPerPage: 6,
		Now:            func() time.Time { return today },
	})
	return testSite{handler: h, inbox: inbox}
}

func (s testSite) get(t *testing.T, target string, header ...string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec.Result()
}

func parse(t *testing.T, resp *http.Response) *html.Node {
	t.Helper()
	defer resp.Body.Close()
	doc, err := html.Parse(resp.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

func withAttr(name, key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, key)
		return n.Data == name && ok && v == value
	}
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestPagesRenderLocaleAndDirection(t *testing.T) {
	s := newTestSite(t)
	paths := []string{
		"/", "/about", "/courses", "/courses/web-development", "/blog",
		"/blog/choosing-a-program", "/careers", "/careers/101", "/events",
		"/faq", "/gallery", "/dashboard", "/contact",
	}

	for _, l := range i18n.Supported() {
		for _, path := range paths {
			target := "/" + string(l) + path
			t.Run(target, func(t *testing.T) {
				resp := s.get(t, target)
				if resp.StatusCode != http.StatusOK {
					t.Fatalf("status = %d, want 200", resp.StatusCode)
				}
				root := find(parse(t, resp), tag("html"))
				if root == nil {
					t.Fatal("no html element")
				}
				if lang, _ := attr(root, "lang"); lang != string(l) {
					t.Fatalf("lang = %q, want %q", lang, l)
				}
				wantDir := "ltr"
				if l == i18n.AR {
					wantDir = "rtl"
				}
				if dir, _ := attr(root, "dir"); dir != wantDir {
					t.Fatalf("dir = %q, want %q", dir, wantDir)
				}
			})
		}
	}
}

func TestLanguageSwitcherLinksToSamePath(t *testing.T) {
	s := newTestSite(t)
	doc := parse(t, s.get(t, "/fr/courses?level=beginner"))

	for _, l := range []string{"ar", "en"} {
		want := "/" + l + "/courses?level=beginner"
		if find(doc, withAttr("link", "href", want)) == nil {
			t.Fatalf("no alternate link to %s", want)
		}
		if find(doc, withAttr("a", "href", want)) == nil {
			t.Fatalf("no switcher link to %s", want)
		}
	}
}

func TestUnprefixedPathRedirects(t *testing.T) {
	s := newTestSite(t)
	tests := []struct {
		name   string
		target string
		header []string
		want   string
	}{
		{"root", "/", nil, "/fr/"},
		{"accept language", "/courses?category=design", []string{"Accept-Language", "ar-MA,ar;q=0.9"}, "/ar/courses?category=design"},
		{"cookie", "/blog", []string{"Cookie", "academy_locale=en"}, "/en/blog"},
		{"unsupported prefix", "/de/about", []string{"Accept-Language", "de"}, "/fr/de/about"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.get(t, tt.target, tt.header...)
			if resp.StatusCode != http.StatusTemporaryRedirect {
				t.Fatalf("status = %d, want 307", resp.StatusCode)
			}
			if loc := resp.Header.Get("Location"); loc != tt.want {
				t.Fatalf("Location = %q, want %q", loc, tt.want)
			}
		})
	}
}

func TestUnknownContentIsNotFound(t *testing.T) {
	s := newTestSite(t)
	for _, target := range []string{
		"/fr/blog/no-such-post",
		"/ar/careers/999",
		"/en/careers/abc",
		"/fr/courses/no-such-course",
		"/en/nowhere",
		"/fr/de/about",
	} {
		t.Run(target, func(t *testing.T) {
			resp := s.get(t, target)
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", resp.StatusCode)
			}
			doc := parse(t, resp)
			if find(doc, withAttr("section", "class", "not-found")) == nil {
				t.Fatal("localized not found page not rendered")
			}
		})
	}
}

func TestArabicBlogFallsBackToEnglishPost(t *testing.T) {
	s := newTestSite(t)
	resp := s.get(t, "/ar/blog/first-steps-in-javascript")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if b := body(t, resp); !strings.Contains(b, "First steps in JavaScript") {
		t.Fatal("English post not served")
	}
}

func TestQueryDrivenToggles(t *testing.T) {
	s := newTestSite(t)

	t.Run("faq open item", func(t *testing.T) {
		doc := parse(t, s.get(t, "/en/faq?open=2"))
		item := find(doc, withAttr("details", "id", "faq-2"))
		if item == nil {
			t.Fatal("faq item 2 missing")
		}
		if _, open := attr(item, "open"); !open {
			t.Fatal("faq item 2 not open")
		}
		if _, open := attr(find(doc, withAttr("details", "id", "faq-0")), "open"); open {
			t.Fatal("faq item 0 open")
		}
	})

	t.Run("gallery wraps backwards", func(t *testing.T) {
		b := body(t, s.get(t, "/en/gallery?photo=-1"))
		want := "Photo 6 of 6"
		if !strings.Contains(b, want) {
			t.Fatalf("lightbox counter %q not found", want)
		}
	})

	t.Run("events month", func(t *testing.T) {
		doc := parse(t, s.get(t, "/en/events?month=2026-11"))
		if find(doc, withAttr("a", "href", "/en/events?month=2026-12")) == nil {
			t.Fatal("next month link missing")
		}
		if find(doc, withAttr("li", "id", "employer-meetup")) == nil {
			t.Fatal("November event missing")
		}
	})

	t.Run("dashboard instructor schedule", func(t *testing.T) {
		b := body(t, s.get(t, "/en/dashboard?view=instructor&tab=schedule"))
		if !strings.Contains(b, "Upcoming sessions") {
			t.Fatal("schedule tab not rendered")
		}
	})
}

func TestContactSubmission(t *testing.T) {
	s := newTestSite(t)

	post := func(form url.Values) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/en/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		return rec.Result()
	}

	resp := post(url.Values{"name": {""}, "email": {"nope"}, "message": {"Hello"}})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid status = %d, want 422", resp.StatusCode)
	}
	b := body(t, resp)
	for _, want := range []string{"Please enter your name.", "Please enter a valid email address."} {
		if !strings.Contains(b, want) {
			t.Fatalf("error %q not shown", want)
		}
	}
	if s.inbox.Count() != 0 {
		t.Fatal("invalid submission stored")
	}

	resp = post(url.Values{
		"name":    {"Amina"},
		"email":   {"amina@example.com"},
		"subject": {"Web development"},
		"message": {"I would like more information about the web course."},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("valid status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/en/contact?sent=1" {
		t.Fatalf("Location = %q", loc)
	}
	msgs := s.inbox.List()
	if len(msgs) != 1 || msgs[0].Locale != "en" || msgs[0].Email != "amina@example.com" {
		t.Fatalf("inbox = %+v", msgs)
	}

	if b := body(t, s.get(t, "/en/contact?sent=1")); !strings.Contains(b, "Thank you! Your message has been sent.") {
		t.Fatal("success notice not shown")
	}
}

func TestContactSubmissionNonEnglish(t *testing.T) {
	tests := []struct {
		locale  string
		message string
	}{
		{"fr", "Je suis titulaire d'un bac scientifique, puis-je suivre le cours de développement web ?"},
		{"fr", "Merci de me rappeler, je suis disponible après 17h. Cordialement, Assia"},
		{"ar", "أود الحصول على معلومات حول دورة تطوير الويب."},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			s := newTestSite(t)
			form := url.Values{"name": {"Assia"}, "email": {"assia@example.com"}, "message": {tt.message}}
			req := httptest.NewRequest(http.MethodPost, "/"+tt.locale+"/contact", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			s.handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", rec.Code)
			}
			msgs := s.inbox.List()
			if len(msgs) != 1 || msgs[0].Locale != tt.locale || msgs[0].Body != tt.message {
				t.Fatalf("inbox = %+v", msgs)
			}
		})
	}
}

func TestTranslationsAPI(t *testing.T) {
	s := newTestSite(t)
	tests := []struct {
		code, locale, dir string
	}{
		{"ar", "ar", "rtl"},
		{"en", "en", "ltr"},
		{"de", "fr", "ltr"},
		{"xx-invalid", "fr", "ltr"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			resp := s.get(t, "/api/translations/"+tt.code)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if cc := resp.Header.Get("Cache-Control"); cc != "public, max-age=300" {
				t.Fatalf("Cache-Control = %q", cc)
			}
			b := body(t, resp)
			for _, want := range []string{`"locale":"` + tt.locale + `"`, `"dir":"` + tt.dir + `"`, `"nav.courses":`} {
				if !strings.Contains(b, want) {
					t.Fatalf("body missing %s", want)
				}
			}
		})
	}
}

func TestLocalesAPI(t *testing.T) {
	s := newTestSite(t)
	b := body(t, s.get(t, "/api/locales"))
	want := `[{"code":"fr","name":"Français","dir":"ltr"},{"code":"ar","name":"العربية","dir":"rtl"},{"code":"en","name":"English","dir":"ltr"}]`
	if strings.TrimSpace(b) != want {
		t.Fatalf("body = %s, want %s", b, want)
	}
}

func TestInfrastructureRoutes(t *testing.T) {
	s := newTestSite(t)
	s.get(t, "/fr/")

	tests := []struct {
		target      string
		contentType string
		contains    string
	}{
		{"/healthz", "text/plain", "ok"},
		{"/robots.txt", "text/plain", "User-agent"},
		{"/static/site.css", "text/css", "[dir=rtl]"},
		{"/static/chroma.css", "text/css", ".chroma"},
		{"/metrics", "text/plain", `academy_http_requests_total{code="200",locale="fr",route="GET /{locale}/{$}"}`},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp := s.get(t, tt.target)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Fatalf("Content-Type = %q, want %s", ct, tt.contentType)
			}
			if b := body(t, resp); !strings.Contains(b, tt.contains) {
				t.Fatalf("body missing %q", tt.contains)
			}
		})
	}
}
