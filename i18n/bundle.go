package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed locales/*.json
var localeFS embed.FS

// Embedded returns the translation files compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// Bundle is the flattened set of translated strings of one locale.
type Bundle struct {
	locale   Locale
	messages map[string]string
	fallback *Bundle
}

// Locale returns the locale the bundle was loaded for.
func (b *Bundle) Locale() Locale {
	if b == nil {
		return Default
	}
	return b.locale
}

// T returns the string for key, falling back to the English bundle and then
// to the key itself. Placeholders {0}, {1}, ... are replaced by args.
func (b *Bundle) T(key string, args ...any) string {
	s, ok := b.lookup(key)
	if !ok {
		s = key
	}
	for i, arg := range args {
		s = strings.ReplaceAll(s, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return s
}

// Has reports whether key resolves in this bundle or its fallback.
func (b *Bundle) Has(key string) bool {
	_, ok := b.lookup(key)
	return ok
}

func (b *Bundle) lookup(key string) (string, bool) {
	for cur := b; cur != nil; cur = cur.fallback {
		if s, ok := cur.messages[key]; ok {
			return s, true
		}
	}
	return "", false
}

// Messages returns a copy of the bundle's own strings.
func (b *Bundle) Messages() map[string]string {
	out := make(map[string]string, len(b.messages))
	for k, v := range b.messages {
		out[k] = v
	}
	return out
}

// Catalog loads and caches bundles from <locale>.json files.
type Catalog struct {
	fsys fs.FS

	mu    sync.RWMutex
	cache map[Locale]*Bundle

	// OnFallback, when set, is called whenever a bundle other than the
	// requested one is served. served is empty when nothing could be loaded.
	OnFallback func(requested, served Locale)
}

// NewCatalog returns a catalog reading from fsys.
func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{
		fsys:  fsys,
		cache: make(map[Locale]*Bundle),
	}
}

// Bundle returns the bundle for code. Unsupported codes get the Default
// bundle, a supported locale whose file cannot be loaded gets the Fallback
// bundle, and an empty bundle is returned when even that fails.
func (c *Catalog) Bundle(code string) *Bundle {
	l, ok := Parse(code)
	if !ok {
		l = Default
	}

	b, err := c.load(l)
	if err == nil {
		return b
	}
	log.Printf("i18n: load %s bundle: %v", l, err)

	if l != Fallback {
		fb, err := c.load(Fallback)
		if err == nil {
			c.reportFallback(l, Fallback)
			return fb
		}
		log.Printf("i18n: load %s bundle: %v", Fallback, err)
	}

	c.reportFallback(l, "")
	return &Bundle{locale: l, messages: map[string]string{}}
}

func (c *Catalog) reportFallback(requested, served Locale) {
	if c.OnFallback != nil {
		c.OnFallback(requested, served)
	}
}

func (c *Catalog) load(l Locale) (*Bundle, error) {
	c.mu.RLock()
	b, ok := c.cache[l]
	c.mu.RUnlock()
	if ok {
		return b, nil
	}

	messages, err := readMessages(c.fsys, l)
	if err != nil {
		return nil, err
	}

	b = &Bundle{locale: l, messages: messages}
	if l != Fallback {
		if fb, err := c.load(Fallback); err == nil {
			b.fallback = fb
		}
	}

	c.mu.Lock()
	c.cache[l] = b
	c.mu.Unlock()
	return b, nil
}

// Check compares every bundle against the Fallback key set and returns the
// keys each locale is missing. Locales whose file cannot be read are
// reported with an error.
func (c *Catalog) Check() (map[Locale][]string, error) {
	reference, err := readMessages(c.fsys, Fallback)
	if err != nil {
		return nil, err
	}

	missing := make(map[Locale][]string)
	for _, l := range supported {
		if l == Fallback {
			continue
		}
		messages, err := readMessages(c.fsys, l)
		if err != nil {
			return nil, err
		}
		for key := range reference {
			if _, ok := messages[key]; !ok {
				missing[l] = append(missing[l], key)
			}
		}
		sort.Strings(missing[l])
	}
	return missing, nil
}

func readMessages(fsys fs.FS, l Locale) (map[string]string, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no translation source")
	}
	data, err := fs.ReadFile(fsys, string(l)+".json")
	if err != nil {
		return nil, fmt.Errorf("read %s.json: %w", l, err)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse %s.json: %w", l, err)
	}

	messages := make(map[string]string)
	flatten("", tree, messages)
	return messages, nil
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(prefix, k), child, out)
		}
	case []any:
		for i, child := range v {
			flatten(join(prefix, strconv.Itoa(i)), child, out)
		}
	case string:
		out[prefix] = v
	case float64:
		out[prefix] = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		out[prefix] = strconv.FormatBool(v)
	case nil:
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
