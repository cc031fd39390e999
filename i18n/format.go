package i18n

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	switch l {
	case AR:
		return language.Arabic
	case EN:
		return language.English
	default:
		return language.French
	}
}

// FormatNumber formats n with the digit grouping of l.
func FormatNumber(l Locale, n int) string {
	return message.NewPrinter(l.Tag()).Sprintf("%d", n)
}

// MonthName returns the localized name of m.
func (b *Bundle) MonthName(m time.Month) string {
	return b.T("calendar.months." + strconv.Itoa(int(m)-1))
}

// FormatDate renders t as a long date in the bundle's locale.
func (b *Bundle) FormatDate(t time.Time) string {
	if b.Locale() == EN {
		return b.MonthName(t.Month()) + " " + strconv.Itoa(t.Day()) + ", " + strconv.Itoa(t.Year())
	}
	return strconv.Itoa(t.Day()) + " " + b.MonthName(t.Month()) + " " + strconv.Itoa(t.Year())
}

// FormatMonth renders the month and year of t.
func (b *Bundle) FormatMonth(t time.Time) string {
	return b.MonthName(t.Month()) + " " + strconv.Itoa(t.Year())
}
