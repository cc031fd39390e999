package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/0xb0b1/academy/config"
	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/storage"
	"github.com/0xb0b1/academy/templates"
)

func TestValidate(t *testing.T) {
	valid := templates.ContactForm{Name: "Amina", Email: "amina@example.com", Message: "Hello"}

	tests := []struct {
		name   string
		locale i18n.Locale
		edit   func(f *templates.ContactForm)
		field  string
		key    string
	}{
		{"valid", i18n.EN, func(f *templates.ContactForm) {}, "", ""},
		{"missing name", i18n.EN, func(f *templates.ContactForm) { f.Name = "" }, "name", "contact.error.name_required"},
		{"malformed email", i18n.EN, func(f *templates.ContactForm) { f.Email = "amina@" }, "email", "contact.error.email_invalid"},
		{"display name email", i18n.EN, func(f *templates.ContactForm) { f.Email = "Amina <amina@example.com>" }, "email", "contact.error.email_invalid"},
		{"missing message", i18n.EN, func(f *templates.ContactForm) { f.Message = "" }, "message", "contact.error.message_required"},
		{"long message", i18n.EN, func(f *templates.ContactForm) { f.Message = strings.Repeat("é", MaxMessageLength+1) }, "message", "contact.error.message_too_long"},
		{"message at limit", i18n.EN, func(f *templates.ContactForm) { f.Message = strings.Repeat("é", MaxMessageLength) }, "", ""},
		{"profane message", i18n.EN, func(f *templates.ContactForm) { f.Message = "this is fucking shit" }, "message", "contact.error.message_inappropriate"},
		{"french inquiry", i18n.FR, func(f *templates.ContactForm) {
			f.Message = "Je suis titulaire d'un bac scientifique, puis-je suivre le cours de développement web ?"
		}, "", ""},
		{"french callback request", i18n.FR, func(f *templates.ContactForm) {
			f.Message = "Merci de me rappeler, je suis disponible après 17h. Cordialement, Assia"
		}, "", ""},
		{"french missing name", i18n.FR, func(f *templates.ContactForm) { f.Name = "" }, "name", "contact.error.name_required"},
		{"arabic inquiry", i18n.AR, func(f *templates.ContactForm) {
			f.Message = "السلام عليكم، أود معرفة موعد بداية دورة تحليل البيانات وشروط التسجيل."
		}, "", ""},
		{"arabic long message", i18n.AR, func(f *templates.ContactForm) { f.Message = strings.Repeat("م", MaxMessageLength+1) }, "message", "contact.error.message_too_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.edit(&f)
			errs := Validate(f, tt.locale)
			if tt.field == "" {
				if len(errs) != 0 {
					t.Fatalf("errors = %v, want none", errs)
				}
				return
			}
			if len(errs) != 1 || errs[tt.field] != tt.key {
				t.Fatalf("errors = %v, want %s=%s", errs, tt.field, tt.key)
			}
		})
	}
}

type failingStore struct{}

func (failingStore) Add(storage.Message) (storage.Message, error) {
	return storage.Message{}, errors.New("disk full")
}

type countingRecorder map[string]int

func (c countingRecorder) ContactSubmission(result string) { c[result]++ }

func testEnv() *Env {
	return &Env{Catalog: i18n.NewCatalog(i18n.Embedded()), Site: config.DefaultSite()}
}

func postContact(h http.Handler, l i18n.Locale, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/"+string(l)+"/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = req.WithContext(i18n.WithLocale(req.Context(), l))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestContactStoreFailure(t *testing.T) {
	rec := countingRecorder{}
	h := &ContactHandler{Env: testEnv(), Inbox: failingStore{}, Recorder: rec}

	resp := postContact(h, i18n.EN, url.Values{
		"name":    {"Amina"},
		"email":   {"amina@example.com"},
		"message": {"Hello"},
	})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "We could not send your message.") {
		t.Fatal("failure notice not shown")
	}
	if rec[ResultFailed] != 1 {
		t.Fatalf("recorded = %v", rec)
	}
}

func TestContactInvalidKeepsValues(t *testing.T) {
	rec := countingRecorder{}
	h := &ContactHandler{Env: testEnv(), Inbox: failingStore{}, Recorder: rec}

	resp := postContact(h, i18n.FR, url.Values{
		"name":    {"Amina"},
		"email":   {"pas-un-email"},
		"message": {"Bonjour"},
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.Code)
	}
	b := resp.Body.String()
	for _, want := range []string{`value="Amina"`, `value="pas-un-email"`, "Bonjour", `lang="fr"`} {
		if !strings.Contains(b, want) {
			t.Fatalf("body missing %s", want)
		}
	}
	if rec[ResultInvalid] != 1 {
		t.Fatalf("recorded = %v", rec)
	}
}

func TestContactPrefillsSubject(t *testing.T) {
	h := &ContactHandler{Env: testEnv()}
	req := httptest.NewRequest(http.MethodGet, "/en/contact?subject=Data+analysis", nil)
	req = req.WithContext(i18n.WithLocale(req.Context(), i18n.EN))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if !strings.Contains(resp.Body.String(), `value="Data analysis"`) {
		t.Fatal("subject not prefilled")
	}
}
