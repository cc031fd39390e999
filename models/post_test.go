package models

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/0xb0b1/academy/content"
	"github.com/0xb0b1/academy/i18n"
)

func postFS() fstest.MapFS {
	return fstest.MapFS{
		"posts/en/older.md": {Data: []byte("---\ntitle: Older\ndate: 2026-01-10\ndescription: First post\ntags:\n  - news\n---\n\nHello **world**.\n")},
		"posts/en/newer.md": {Data: []byte("---\ntitle: Newer\ndate: 2026-03-01\nauthor: Nadia\ntags:\n  - news\n  - web\n---\n\n```go\nfmt.Println(1)\n```\n")},
		"posts/fr/older.md": {Data: []byte("---\ntitle: Ancien\ndate: 2026-01-10\n---\n\nBonjour.\n")},
		"posts/fr/notes.txt": {Data: []byte("ignored")},
	}
}

func TestLoadPostsParsesFrontMatter(t *testing.T) {
	posts, err := LoadPosts(postFS(), i18n.EN)
	if err != nil {
		t.Fatalf("LoadPosts() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].Slug != "newer" || posts[1].Slug != "older" {
		t.Fatalf("posts not sorted newest first: %s, %s", posts[0].Slug, posts[1].Slug)
	}
	newer := posts[0]
	if newer.Author != "Nadia" || len(newer.Tags) != 2 || newer.Locale != i18n.EN {
		t.Fatalf("unexpected metadata: %+v", newer)
	}
	if !strings.Contains(string(newer.Content), "chroma") {
		t.Fatalf("code block not highlighted: %s", newer.Content)
	}
	if !strings.Contains(string(posts[1].Content), "<strong>world</strong>") {
		t.Fatalf("markdown not rendered: %s", posts[1].Content)
	}
	if posts[1].ReadingTime != 1 {
		t.Fatalf("ReadingTime = %d, want 1", posts[1].ReadingTime)
	}
}

func TestLoadBlogToleratesMissingLocale(t *testing.T) {
	blog, err := LoadBlog(postFS())
	if err != nil {
		t.Fatalf("LoadBlog() error = %v", err)
	}
	if blog.Count(i18n.AR) != 0 {
		t.Fatalf("Count(ar) = %d, want 0", blog.Count(i18n.AR))
	}
	if got := blog.Posts(i18n.AR); len(got) != 2 {
		t.Fatalf("Posts(ar) = %d posts, want English fallback of 2", len(got))
	}
}

func TestBlogFallsBackToEnglishPost(t *testing.T) {
	blog, err := LoadBlog(postFS())
	if err != nil {
		t.Fatalf("LoadBlog() error = %v", err)
	}

	fr := blog.Posts(i18n.FR)
	if len(fr) != 2 {
		t.Fatalf("Posts(fr) = %d posts, want 2", len(fr))
	}
	if fr[0].Slug != "newer" || fr[0].Locale != i18n.EN {
		t.Fatalf("expected untranslated post in English first, got %+v", fr[0])
	}
	if fr[1].Title != "Ancien" {
		t.Fatalf("expected French version of older, got %q", fr[1].Title)
	}

	post, ok := blog.Find(i18n.FR, "newer")
	if !ok || post.Locale != i18n.EN {
		t.Fatalf("Find(fr, newer) = %+v, %t", post, ok)
	}
	if _, ok := blog.Find(i18n.FR, "missing"); ok {
		t.Fatalf("Find(fr, missing) should fail")
	}
}

func TestSearchPosts(t *testing.T) {
	posts, _ := LoadPosts(postFS(), i18n.EN)
	if got := SearchPosts(posts, "FIRST"); len(got) != 1 || got[0].Slug != "older" {
		t.Fatalf("SearchPosts(FIRST) = %v", got)
	}
	if got := SearchPosts(posts, "  "); len(got) != 2 {
		t.Fatalf("blank query should keep all posts")
	}
}

func TestEmbeddedPostsLoad(t *testing.T) {
	blog, err := LoadBlog(content.FS)
	if err != nil {
		t.Fatalf("LoadBlog(embedded) error = %v", err)
	}
	for _, l := range []i18n.Locale{i18n.FR, i18n.EN} {
		if blog.Count(l) == 0 {
			t.Fatalf("no embedded posts for %s", l)
		}
	}
	for _, p := range blog.Posts(i18n.EN) {
		if p.Date.IsZero() {
			t.Fatalf("post %s has no date", p.Slug)
		}
	}
	if _, ok := blog.Find(i18n.AR, "first-steps-in-javascript"); !ok {
		t.Fatalf("arabic readers should get the English post")
	}
}

func TestGetDateMetaFormats(t *testing.T) {
	tests := map[string]time.Time{
		"2026-01-02":          time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		"2026-01-02 15:04:05": time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	for in, want := range tests {
		got := getDateMeta(map[string]interface{}{"date": in}, "date")
		if !got.Equal(want) {
			t.Fatalf("getDateMeta(%q) = %v, want %v", in, got, want)
		}
	}
	if got := getDateMeta(map[string]interface{}{}, "date"); !got.IsZero() {
		t.Fatalf("missing date should be zero, got %v", got)
	}
}
