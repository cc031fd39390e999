package handlers

import (
	"log"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/0xb0b1/academy/i18n"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type translationsResponse struct {
	Locale   i18n.Locale       `json:"locale"`
	Dir      i18n.Direction    `json:"dir"`
	Messages map[string]string `json:"messages"`
}

type localeInfo struct {
	Code i18n.Locale    `json:"code"`
	Name string         `json:"name"`
	Dir  i18n.Direction `json:"dir"`
}

// TranslationsHandler serves a flat bundle as JSON. Unsupported codes get the
// default bundle.
type TranslationsHandler struct {
	Catalog *i18n.Catalog
}

func (h *TranslationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b := h.Catalog.Bundle(r.PathValue("locale"))
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, translationsResponse{
		Locale:   b.Locale(),
		Dir:      b.Locale().Dir(),
		Messages: b.Messages(),
	})
}

// LocalesHandler lists the supported locales.
func LocalesHandler(w http.ResponseWriter, r *http.Request) {
	var out []localeInfo
	for _, l := range i18n.Supported() {
		out = append(out, localeInfo{Code: l, Name: l.Name(), Dir: l.Dir()})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
