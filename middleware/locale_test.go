package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xb0b1/academy/i18n"
)

func echoLocale() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(i18n.FromContext(r.Context())))
	})
}

func TestLocaleRedirectsUnprefixedPaths(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		accept   string
		cookie   string
		location string
	}{
		{"root defaults to french", "/", "", "", "/fr/"},
		{"accept-language", "/courses", "en-GB,en;q=0.9", "", "/en/courses"},
		{"arabic", "/blog/open-day-2026", "ar-MA", "", "/ar/blog/open-day-2026"},
		{"unsupported language", "/careers", "de-DE", "", "/fr/careers"},
		{"query kept", "/courses?category=design&page=2", "en", "", "/en/courses?category=design&page=2"},
		{"cookie wins", "/faq", "en", "ar", "/ar/faq"},
		{"invalid cookie ignored", "/faq", "en", "xx", "/en/faq"},
		{"unsupported prefix is a path", "/de/courses", "", "", "/fr/de/courses"},
		{"upper case is not a prefix", "/EN/courses", "", "", "/fr/EN/courses"},
		{"escaped question mark kept", "/blog/a%3Fb", "", "", "/fr/blog/a%3Fb"},
		{"escaped space kept", "/blog/a%20b?page=2", "", "", "/fr/blog/a%20b?page=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			Locale(echoLocale()).ServeHTTP(rec, req)

			if rec.Code != http.StatusTemporaryRedirect {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
			}
			if got := rec.Header().Get("Location"); got != tt.location {
				t.Fatalf("Location = %q, want %q", got, tt.location)
			}
			if len(rec.Header().Values("Vary")) != 2 {
				t.Fatalf("Vary = %v", rec.Header().Values("Vary"))
			}
		})
	}
}

func TestLocalePreservesPostMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	rec := httptest.NewRecorder()
	Locale(echoLocale()).ServeHTTP(rec, req)
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307 so the method is kept", rec.Code)
	}
}

func TestLocalePassesPrefixedPaths(t *testing.T) {
	for _, l := range i18n.Supported() {
		t.Run(string(l), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+string(l)+"/courses", nil)
			rec := httptest.NewRecorder()
			Locale(echoLocale()).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if rec.Body.String() != string(l) {
				t.Fatalf("context locale = %q, want %q", rec.Body.String(), l)
			}
			cookies := rec.Result().Cookies()
			if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != string(l) {
				t.Fatalf("cookies = %v", cookies)
			}
		})
	}
}

func TestLocaleSkipsCookieWhenUnchanged(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/en/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "en"})
	rec := httptest.NewRecorder()
	Locale(echoLocale()).ServeHTTP(rec, req)
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("unexpected Set-Cookie: %v", rec.Result().Cookies())
	}
}

func TestLocaleExemptPaths(t *testing.T) {
	for _, path := range []string{"/static/site.css", "/api/translations/fr", "/metrics", "/healthz", "/robots.txt"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Locale(echoLocale()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
		})
	}

	rec := httptest.NewRecorder()
	Locale(echoLocale()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metricsx", nil))
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("/metricsx should be redirected, got %d", rec.Code)
	}
}

func TestStripLocale(t *testing.T) {
	tests := map[string]string{
		"/fr":            "/",
		"/fr/":           "/",
		"/ar/courses":    "/courses",
		"/en/blog/a?x=1": "/blog/a?x=1",
		"/about":         "/about",
		"/french/x":      "/french/x",
	}
	for in, want := range tests {
		if got := StripLocale(in); got != want {
			t.Fatalf("StripLocale(%q) = %q, want %q", in, got, want)
		}
	}
}
