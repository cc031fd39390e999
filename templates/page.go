// Package templates renders the site pages as templ components.
package templates

import (
	"net/url"
	"strconv"
	"time"

	"github.com/0xb0b1/academy/config"
	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/models"
)

// Page carries what every page needs: locale, strings, site identity and
// the current path without its locale prefix.
type Page struct {
	Locale i18n.Locale
	T      *i18n.Bundle
	Site   config.Site
	Path   string
	Query  url.Values
	Title  string
	Nav    string
	Now    time.Time
}

// URL returns path under the page locale.
func (p Page) URL(path string) string {
	return LocaleURL(p.Locale, path, nil)
}

// URLWith returns path under the page locale with a query string.
func (p Page) URLWith(path string, query url.Values) string {
	return LocaleURL(p.Locale, path, query)
}

// LocaleURL returns path under the locale l.
func LocaleURL(l i18n.Locale, path string, query url.Values) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	u := "/" + string(l) + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// DocumentTitle is the <title> of the page.
func (p Page) DocumentTitle() string {
	if p.Title == "" {
		return p.Site.Name
	}
	return p.Title + " - " + p.Site.Name
}

type navItem struct {
	Key  string
	Path string
}

var navItems = []navItem{
	{"home", "/"},
	{"about", "/about"},
	{"courses", "/courses"},
	{"blog", "/blog"},
	{"events", "/events"},
	{"careers", "/careers"},
	{"faq", "/faq"},
	{"gallery", "/gallery"},
	{"dashboard", "/dashboard"},
	{"contact", "/contact"},
}

// HomeData is the content of the home page.
type HomeData struct {
	Featured     []models.Course
	Testimonials []models.Testimonial
	Current      int
	Graduates    int
	CourseCount  int
	Partners     int
	Placement    int
}

// CatalogData is the filtered, paginated course catalog.
type CatalogData struct {
	Courses    []models.Course
	Pagination models.Pagination
	Filter     models.CourseFilter
}

// BlogData is a page of the post list.
type BlogData struct {
	Posts      []models.Post
	Pagination models.Pagination
	Query      string
	Tag        string
	Tags       []string
}

// DashboardData selects the preview and the tab shown.
type DashboardData struct {
	View       models.DashboardView
	Tab        models.DashboardTab
	Student    models.StudentPreview
	Instructor models.InstructorPreview
}

// ContactForm holds submitted values and the message keys of field errors.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
	Errors  map[string]string
}

// ContactData is the contact page state.
type ContactData struct {
	Form ContactForm
	Sent bool
	// Failure is set when a valid submission could not be stored.
	Failure string
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func active(on bool) string {
	if on {
		return "active"
	}
	return ""
}

// with returns a copy of q with key set to value, or removed when empty.
func with(q url.Values, key, value string) url.Values {
	out := url.Values{}
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	if value == "" {
		out.Del(key)
	} else {
		out.Set(key, value)
	}
	return out
}

func stars(rating int) string {
	s := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}

func dayClass(d models.Day) string {
	class := "day"
	if !d.InMonth {
		class += " outside"
	}
	if d.Today {
		class += " today"
	}
	if len(d.Events) > 0 {
		class += " has-events"
	}
	return class
}

func timeAt(b *i18n.Bundle, t time.Time) string {
	return b.FormatDate(t) + " " + t.Format("15:04")
}

func courseTitle(p Page, slug string) string {
	if c, ok := models.FindCourse(slug); ok {
		return c.Title.In(p.Locale)
	}
	return slug
}

func fieldClass(f ContactForm, name string) string {
	if _, bad := f.Errors[name]; bad {
		return "invalid"
	}
	return ""
}
