// Package middleware holds the locale routing applied in front of every
// page route.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/0xb0b1/academy/i18n"
)

// CookieName stores the visitor's last used locale.
const CookieName = "academy_locale"

// exempt paths are served without a locale prefix.
var exempt = []string{
	"/static/",
	"/api/",
	"/metrics",
	"/healthz",
	"/favicon.ico",
	"/robots.txt",
}

// Locale routes every page request under a locale prefix. Requests whose
// first path segment is a supported locale are passed on with the locale in
// their context; other page requests are redirected to the same path under
// the negotiated locale.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if l, ok := PathLocale(r.URL.Path); ok {
			remember(w, r, l)
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), l)))
			return
		}

		l := negotiate(r)
		target := "/" + string(l) + r.URL.EscapedPath()
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

// PathLocale reports the locale named by the first segment of path. Only
// exact lower-case codes count as a prefix.
func PathLocale(path string) (i18n.Locale, bool) {
	segment := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(segment, '/'); i >= 0 {
		segment = segment[:i]
	}
	for _, l := range i18n.Supported() {
		if segment == string(l) {
			return l, true
		}
	}
	return "", false
}

// StripLocale returns path without its locale prefix, always starting with "/".
func StripLocale(path string) string {
	l, ok := PathLocale(path)
	if !ok {
		return path
	}
	rest := strings.TrimPrefix(path, "/"+string(l))
	if rest == "" {
		return "/"
	}
	return rest
}

func isExempt(path string) bool {
	for _, prefix := range exempt {
		if strings.HasSuffix(prefix, "/") {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		if path == prefix {
			return true
		}
	}
	return false
}

func negotiate(r *http.Request) i18n.Locale {
	if c, err := r.Cookie(CookieName); err == nil {
		if l, ok := i18n.Parse(c.Value); ok {
			return l
		}
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}

func remember(w http.ResponseWriter, r *http.Request, l i18n.Locale) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value == string(l) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(l),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
