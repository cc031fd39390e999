package i18n

import (
	"testing"
	"testing/fstest"
	"time"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en.json": {Data: []byte(`{"nav":{"home":"Home","about":"About"},"count":3,"list":["a","b"],"greet":"Hi {0}, page {1}"}`)},
		"fr.json": {Data: []byte(`{"nav":{"home":"Accueil"}}`)},
		"ar.json": {Data: []byte(`{"nav":`)},
	}
}

func TestBundleFlattensNestedKeys(t *testing.T) {
	b := NewCatalog(testFS()).Bundle("en")
	tests := map[string]string{
		"nav.home": "Home",
		"count":    "3",
		"list.1":   "b",
	}
	for key, want := range tests {
		if got := b.T(key); got != want {
			t.Fatalf("T(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestBundleMissingKeyFallsBackToEnglish(t *testing.T) {
	b := NewCatalog(testFS()).Bundle("fr")
	if b.Locale() != FR {
		t.Fatalf("Locale() = %q, want fr", b.Locale())
	}
	if got := b.T("nav.home"); got != "Accueil" {
		t.Fatalf("T(nav.home) = %q", got)
	}
	if got := b.T("nav.about"); got != "About" {
		t.Fatalf("T(nav.about) = %q, want English fallback", got)
	}
	if got := b.T("nope.missing"); got != "nope.missing" {
		t.Fatalf("T(missing) = %q, want key", got)
	}
}

func TestBundlePlaceholders(t *testing.T) {
	b := NewCatalog(testFS()).Bundle("en")
	if got := b.T("greet", "Sara", 2); got != "Hi Sara, page 2" {
		t.Fatalf("T(greet) = %q", got)
	}
}

func TestBundleUnsupportedLocaleServesDefault(t *testing.T) {
	var fallbacks int
	c := NewCatalog(testFS())
	c.OnFallback = func(Locale, Locale) { fallbacks++ }

	b := c.Bundle("de")
	if b.Locale() != FR {
		t.Fatalf("Locale() = %q, want fr", b.Locale())
	}
	if fallbacks != 0 {
		t.Fatalf("unsupported code should not count as a load fallback")
	}
}

func TestBundleBrokenFileServesEnglish(t *testing.T) {
	var requested, served Locale
	c := NewCatalog(testFS())
	c.OnFallback = func(r, s Locale) { requested, served = r, s }

	b := c.Bundle("ar")
	if b.Locale() != EN {
		t.Fatalf("Locale() = %q, want en", b.Locale())
	}
	if got := b.T("nav.home"); got != "Home" {
		t.Fatalf("T(nav.home) = %q", got)
	}
	if requested != AR || served != EN {
		t.Fatalf("OnFallback(%q, %q), want (ar, en)", requested, served)
	}
}

func TestBundleNothingLoadableIsEmpty(t *testing.T) {
	c := NewCatalog(fstest.MapFS{})
	b := c.Bundle("fr")
	if got := b.T("nav.home"); got != "nav.home" {
		t.Fatalf("T on empty bundle = %q, want key", got)
	}
	if len(b.Messages()) != 0 {
		t.Fatalf("Messages() = %v, want empty", b.Messages())
	}
}

func TestBundleIsCached(t *testing.T) {
	fsys := testFS()
	c := NewCatalog(fsys)
	first := c.Bundle("fr")
	delete(fsys, "fr.json")
	if second := c.Bundle("fr"); second != first {
		t.Fatalf("expected cached bundle")
	}
}

func TestCheckReportsMissingKeys(t *testing.T) {
	fsys := testFS()
	fsys["ar.json"] = &fstest.MapFile{Data: []byte(`{"nav":{"home":"الرئيسية","about":"من نحن"},"count":3,"list":["a","b"],"greet":"x"}`)}

	missing, err := NewCatalog(fsys).Check()
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(missing[AR]) != 0 {
		t.Fatalf("missing[ar] = %v, want none", missing[AR])
	}
	want := []string{"count", "greet", "list.0", "list.1", "nav.about"}
	if got := missing[FR]; len(got) != len(want) {
		t.Fatalf("missing[fr] = %v, want %v", got, want)
	}
	for i := range want {
		if missing[FR][i] != want[i] {
			t.Fatalf("missing[fr] = %v, want %v", missing[FR], want)
		}
	}
}

func TestEmbeddedBundlesAreComplete(t *testing.T) {
	missing, err := NewCatalog(Embedded()).Check()
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	for l, keys := range missing {
		if len(keys) > 0 {
			t.Fatalf("%s is missing %v", l, keys)
		}
	}
}

func TestFormatDate(t *testing.T) {
	c := NewCatalog(Embedded())
	day := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

	tests := map[string]string{
		"fr": "17 octobre 2026",
		"en": "October 17, 2026",
		"ar": "17 أكتوبر 2026",
	}
	for code, want := range tests {
		if got := c.Bundle(code).FormatDate(day); got != want {
			t.Fatalf("FormatDate(%s) = %q, want %q", code, got, want)
		}
	}
	if got := c.Bundle("en").FormatMonth(day); got != "October 2026" {
		t.Fatalf("FormatMonth = %q", got)
	}
}

func TestFormatNumberGroupsDigits(t *testing.T) {
	if got := FormatNumber(EN, 14000); got != "14,000" {
		t.Fatalf("FormatNumber(en) = %q, want 14,000", got)
	}
}
