package i18n

// Text is a string with one entry per locale.
type Text map[Locale]string

// In returns the entry for l, falling back to English, then French.
func (t Text) In(l Locale) string {
	if s, ok := t[l]; ok && s != "" {
		return s
	}
	if s, ok := t[EN]; ok && s != "" {
		return s
	}
	return t[FR]
}

// Missing lists the supported locales that have no entry.
func (t Text) Missing() []Locale {
	var out []Locale
	for _, l := range supported {
		if t[l] == "" {
			out = append(out, l)
		}
	}
	return out
}
