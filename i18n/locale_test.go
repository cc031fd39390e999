package i18n

import (
	"context"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
		ok   bool
	}{
		{"fr", FR, true},
		{"AR", AR, true},
		{" en ", EN, true},
		{"fr-CA", FR, true},
		{"ar_MA", AR, true},
		{"de", "", false},
		{"", "", false},
		{"english", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Parse(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeFallsBackToDefault(t *testing.T) {
	if got := Normalize("xx"); got != FR {
		t.Fatalf("Normalize(xx) = %q, want %q", got, FR)
	}
	if got := Normalize("en"); got != EN {
		t.Fatalf("Normalize(en) = %q, want %q", got, EN)
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Locale
	}{
		{"empty", "", FR},
		{"english", "en-US,en;q=0.9", EN},
		{"arabic region", "ar-MA", AR},
		{"quality order", "de;q=0.9, ar;q=0.8, en;q=0.5", AR},
		{"unsupported only", "de-DE, ja", FR},
		{"malformed", ";;;q=abc", FR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Negotiate(tt.header); got != tt.want {
				t.Fatalf("Negotiate(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestDirOnlyArabicIsRTL(t *testing.T) {
	for _, l := range Supported() {
		want := LTR
		if l == AR {
			want = RTL
		}
		if got := l.Dir(); got != want {
			t.Fatalf("%s.Dir() = %q, want %q", l, got, want)
		}
	}
}

func TestOthers(t *testing.T) {
	others := AR.Others()
	if len(others) != 2 || others[0] != FR || others[1] != EN {
		t.Fatalf("AR.Others() = %v, want [fr en]", others)
	}
}

func TestContextLocale(t *testing.T) {
	if got := FromContext(context.Background()); got != Default {
		t.Fatalf("FromContext(empty) = %q, want %q", got, Default)
	}
	ctx := WithLocale(context.Background(), AR)
	if got := FromContext(ctx); got != AR {
		t.Fatalf("FromContext = %q, want %q", got, AR)
	}
}

func TestTextIn(t *testing.T) {
	full := Text{FR: "Bonjour", AR: "مرحبا", EN: "Hello"}
	if got := full.In(AR); got != "مرحبا" {
		t.Fatalf("In(ar) = %q", got)
	}

	partial := Text{FR: "Bonjour", EN: "Hello"}
	if got := partial.In(AR); got != "Hello" {
		t.Fatalf("In(ar) on partial = %q, want English fallback", got)
	}

	frOnly := Text{FR: "Bonjour"}
	if got := frOnly.In(EN); got != "Bonjour" {
		t.Fatalf("In(en) on fr-only = %q, want French fallback", got)
	}

	if missing := partial.Missing(); len(missing) != 1 || missing[0] != AR {
		t.Fatalf("Missing() = %v, want [ar]", missing)
	}
}
