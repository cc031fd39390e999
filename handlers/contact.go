package handlers

import (
	"log"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/finnbear/moderation"

	"github.com/0xb0b1/academy/i18n"
	"github.com/0xb0b1/academy/storage"
	"github.com/0xb0b1/academy/templates"
)

// MaxMessageLength is the longest accepted message, in characters.
const MaxMessageLength = 5000

// Submission results reported to the recorder.
const (
	ResultSent    = "sent"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

// MessageStore persists contact submissions.
type MessageStore interface {
	Add(m storage.Message) (storage.Message, error)
}

// SubmissionRecorder counts contact submissions by result.
type SubmissionRecorder interface {
	ContactSubmission(result string)
}

type ContactHandler struct {
	*Env
	Inbox    MessageStore
	Recorder SubmissionRecorder
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.submit(w, r)
		return
	}
	p := h.page(r, "contact", "contact.title")
	q := r.URL.Query()
	h.render(w, r, p, templates.Contact(p, templates.ContactData{
		Form: templates.ContactForm{Subject: q.Get("subject")},
		Sent: q.Get("sent") == "1",
	}))
}

func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "contact", "contact.title")
	form := templates.ContactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	form.Errors = Validate(form, p.Locale)
	if len(form.Errors) > 0 {
		h.record(ResultInvalid)
		h.renderStatus(w, r, http.StatusUnprocessableEntity, p, templates.Contact(p, templates.ContactData{Form: form}))
		return
	}

	_, err := h.Inbox.Add(storage.Message{
		Locale:  string(p.Locale),
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Body:    form.Message,
	})
	if err != nil {
		log.Printf("Error saving contact message: %v", err)
		h.record(ResultFailed)
		h.renderStatus(w, r, http.StatusInternalServerError, p, templates.Contact(p, templates.ContactData{
			Form:    form,
			Failure: "contact.error.save_failed",
		}))
		return
	}

	h.record(ResultSent)
	http.Redirect(w, r, p.URL("/contact")+"?sent=1", http.StatusSeeOther)
}

func (h *ContactHandler) record(result string) {
	if h.Recorder != nil {
		h.Recorder.ContactSubmission(result)
	}
}

// Validate checks a contact form written in locale l and returns the bundle
// key of the error of each invalid field. The moderation word list is
// English, so only English messages are screened.
func Validate(f templates.ContactForm, l i18n.Locale) map[string]string {
	errs := map[string]string{}
	if f.Name == "" {
		errs["name"] = "contact.error.name_required"
	}
	if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
		errs["email"] = "contact.error.email_invalid"
	}
	switch {
	case f.Message == "":
		errs["message"] = "contact.error.message_required"
	case utf8.RuneCountInString(f.Message) > MaxMessageLength:
		errs["message"] = "contact.error.message_too_long"
	case l == i18n.EN && moderation.Scan(f.Message).Is(moderation.Inappropriate):
		errs["message"] = "contact.error.message_inappropriate"
	}
	return errs
}
