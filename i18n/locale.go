// Package i18n holds the supported locales, locale negotiation and the
// translation bundles served to every page.
package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Locale represents a supported locale code.
type Locale string

const (
	FR Locale = "fr"
	AR Locale = "ar"
	EN Locale = "en"
)

// Default is served when no locale can be negotiated.
const Default = FR

// Fallback is the bundle of last resort.
const Fallback = EN

// Direction is the reading direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var supported = []Locale{FR, AR, EN}

var matcher = language.NewMatcher([]language.Tag{
	language.French,
	language.Arabic,
	language.English,
})

// Supported returns all supported locales, default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse parses a locale code. Region-qualified codes such as "fr-CA" or
// "ar_MA" resolve to their base language.
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	for _, l := range supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Normalize returns the parsed locale, or Default when s is not supported.
func Normalize(s string) Locale {
	if l, ok := Parse(s); ok {
		return l
	}
	return Default
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(supported) {
		return Default
	}
	return supported[idx]
}

// Dir returns the reading direction of the locale.
func (l Locale) Dir() Direction {
	if l == AR {
		return RTL
	}
	return LTR
}

// Name returns the display name of the locale, written in that locale.
func (l Locale) Name() string {
	switch l {
	case AR:
		return "العربية"
	case EN:
		return "English"
	default:
		return "Français"
	}
}

// Others returns the supported locales except l, for the language switcher.
func (l Locale) Others() []Locale {
	out := make([]Locale, 0, len(supported)-1)
	for _, s := range supported {
		if s != l {
			out = append(out, s)
		}
	}
	return out
}

func (l Locale) String() string {
	return string(l)
}

type contextKey struct{}

// WithLocale stores the request locale in ctx.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request locale, or Default when none was set.
func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(contextKey{}).(Locale); ok {
		return l
	}
	return Default
}
