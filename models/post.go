package models

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/0xb0b1/academy/i18n"
)

type Post struct {
	Title       string
	Slug        string
	Locale      i18n.Locale
	Date        time.Time
	Author      string
	Description string
	Tags        []string
	Content     template.HTML
	ReadingTime int
}

// HighlightStyle is the chroma style used for code blocks in posts.
const HighlightStyle = "github"

var markdown = goldmark.New(
	goldmark.WithExtensions(
		meta.Meta,
		highlighting.NewHighlighting(
			highlighting.WithStyle(HighlightStyle),
			highlighting.WithFormatOptions(
				html.WithClasses(true), // Use CSS classes instead of inline styles
				html.WithLineNumbers(false),
			),
		),
	),
)

// LoadPosts reads all markdown files under posts/<locale> in fsys.
func LoadPosts(fsys fs.FS, locale i18n.Locale) ([]Post, error) {
	var posts []Post
	root := path.Join("posts", string(locale))

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}

		post, err := parsePost(fsys, p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		post.Locale = locale

		posts = append(posts, post)
		return nil
	})

	if err != nil {
		return nil, err
	}

	sortNewestFirst(posts)
	return posts, nil
}

func sortNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}

func parsePost(fsys fs.FS, p string) (Post, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Post{}, err
	}

	var buf bytes.Buffer
	context := parser.NewContext()

	if err := markdown.Convert(content, &buf, parser.WithContext(context)); err != nil {
		return Post{}, err
	}

	metaData := meta.Get(context)

	title := getStringMeta(metaData, "title", "Untitled")
	date := getDateMeta(metaData, "date")
	author := getStringMeta(metaData, "author", "")
	description := getStringMeta(metaData, "description", "")
	tags := getSliceMeta(metaData, "tags")

	slug := strings.TrimSuffix(path.Base(p), ".md")

	// Average 200 words per minute
	wordCount := len(strings.Fields(string(content)))
	readingTime := int(math.Ceil(float64(wordCount) / 200.0))
	if readingTime < 1 {
		readingTime = 1
	}

	return Post{
		Title:       title,
		Slug:        slug,
		Date:        date,
		Author:      author,
		Description: description,
		Tags:        tags,
		Content:     template.HTML(buf.String()),
		ReadingTime: readingTime,
	}, nil
}

func getStringMeta(data map[string]interface{}, key, defaultVal string) string {
	if val, ok := data[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultVal
}

func getDateMeta(data map[string]interface{}, key string) time.Time {
	if val, ok := data[key]; ok {
		if str, ok := val.(string); ok {
			formats := []string{
				"2006-01-02",
				"2006-01-02 15:04:05",
				time.RFC3339,
			}
			for _, format := range formats {
				if t, err := time.Parse(format, str); err == nil {
					return t
				}
			}
		}
	}
	return time.Time{}
}

func getSliceMeta(data map[string]interface{}, key string) []string {
	if val, ok := data[key]; ok {
		if slice, ok := val.([]interface{}); ok {
			result := make([]string, 0, len(slice))
			for _, item := range slice {
				if str, ok := item.(string); ok {
					result = append(result, str)
				}
			}
			return result
		}
	}
	return []string{}
}

// Blog holds the posts of every locale.
type Blog struct {
	byLocale map[i18n.Locale][]Post
}

// NewBlog builds a blog from posts grouped by locale.
func NewBlog(byLocale map[i18n.Locale][]Post) *Blog {
	return &Blog{byLocale: byLocale}
}

// LoadBlog loads the posts of every supported locale from fsys. A locale
// without a posts directory is left empty.
func LoadBlog(fsys fs.FS) (*Blog, error) {
	byLocale := make(map[i18n.Locale][]Post)
	for _, l := range i18n.Supported() {
		posts, err := LoadPosts(fsys, l)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				byLocale[l] = nil
				continue
			}
			return nil, fmt.Errorf("load %s posts: %w", l, err)
		}
		byLocale[l] = posts
	}
	return NewBlog(byLocale), nil
}

// Count returns the number of posts written in l.
func (b *Blog) Count(l i18n.Locale) int {
	return len(b.byLocale[l])
}

// Posts returns the posts of l, newest first. English posts with no
// translation in l are included in their English version.
func (b *Blog) Posts(l i18n.Locale) []Post {
	own := b.byLocale[l]
	posts := make([]Post, 0, len(own))
	posts = append(posts, own...)

	if l != i18n.Fallback {
		seen := make(map[string]bool, len(own))
		for _, p := range own {
			seen[p.Slug] = true
		}
		for _, p := range b.byLocale[i18n.Fallback] {
			if !seen[p.Slug] {
				posts = append(posts, p)
			}
		}
	}

	sortNewestFirst(posts)
	return posts
}

// Find returns the post with slug in l, or its English version.
func (b *Blog) Find(l i18n.Locale, slug string) (Post, bool) {
	for _, p := range b.byLocale[l] {
		if p.Slug == slug {
			return p, true
		}
	}
	for _, p := range b.byLocale[i18n.Fallback] {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// SearchPosts keeps posts whose title or description contains query.
func SearchPosts(posts []Post, query string) []Post {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return posts
	}

	var filtered []Post
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), query) ||
			strings.Contains(strings.ToLower(post.Description), query) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
