package models

import (
	"sort"
	"time"

	"github.com/0xb0b1/academy/i18n"
)

type Event struct {
	ID          string
	Start       time.Time
	End         time.Time
	Title       i18n.Text
	Location    i18n.Text
	Description i18n.Text
}

var events = []Event{
	{
		ID:    "open-day-october",
		Start: time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.October, 17, 17, 0, 0, 0, time.UTC),
		Title: i18n.Text{
			i18n.FR: "Journée portes ouvertes",
			i18n.AR: "يوم الأبواب المفتوحة",
			i18n.EN: "Open day",
		},
		Location: i18n.Text{i18n.FR: "Campus de Casablanca", i18n.AR: "حرم الدار البيضاء", i18n.EN: "Casablanca campus"},
		Description: i18n.Text{
			i18n.FR: "Visitez les salles, rencontrez les formateurs et assistez à des cours d'essai.",
			i18n.AR: "زوروا القاعات والتقوا بالمكونين وحضروا دروسا تجريبية.",
			i18n.EN: "Visit the classrooms, meet the trainers and sit in on trial classes.",
		},
	},
	{
		ID:    "portfolio-workshop",
		Start: time.Date(2026, time.October, 28, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.October, 29, 18, 0, 0, 0, time.UTC),
		Title: i18n.Text{
			i18n.FR: "Atelier portfolio",
			i18n.AR: "ورشة ملف الأعمال",
			i18n.EN: "Portfolio workshop",
		},
		Location: i18n.Text{i18n.FR: "Studio design", i18n.AR: "استوديو التصميم", i18n.EN: "Design studio"},
		Description: i18n.Text{
			i18n.FR: "Deux demi-journées pour structurer et présenter vos projets.",
			i18n.EN: "Two half-days to structure and present your projects.",
		},
	},
	{
		ID:    "employer-meetup",
		Start: time.Date(2026, time.November, 12, 18, 30, 0, 0, time.UTC),
		End:   time.Date(2026, time.November, 12, 21, 0, 0, 0, time.UTC),
		Title: i18n.Text{
			i18n.FR: "Rencontre entreprises",
			i18n.AR: "لقاء المقاولات",
			i18n.EN: "Employer meetup",
		},
		Location: i18n.Text{i18n.FR: "Campus de Rabat", i18n.AR: "حرم الرباط", i18n.EN: "Rabat campus"},
		Description: i18n.Text{
			i18n.FR: "Nos partenaires présentent leurs offres de stage et d'emploi.",
			i18n.AR: "يقدم شركاؤنا عروض التداريب والشغل.",
			i18n.EN: "Our partners present their internship and job offers.",
		},
	},
	{
		ID:    "graduation-2026",
		Start: time.Date(2026, time.December, 19, 16, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.December, 19, 20, 0, 0, 0, time.UTC),
		Title: i18n.Text{
			i18n.FR: "Cérémonie de remise des diplômes",
			i18n.AR: "حفل تسليم الشهادات",
			i18n.EN: "Graduation ceremony",
		},
		Location: i18n.Text{i18n.FR: "Théâtre municipal", i18n.AR: "المسرح البلدي", i18n.EN: "City theatre"},
		Description: i18n.Text{
			i18n.FR: "Célébrons ensemble la promotion 2026.",
			i18n.AR: "لنحتفل معا بفوج 2026.",
			i18n.EN: "Let's celebrate the class of 2026 together.",
		},
	},
}

// Events returns every scheduled event, soonest first.
func Events() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// EventsIn returns the events overlapping the calendar month of month.
func EventsIn(all []Event, month time.Time) []Event {
	first := firstOfMonth(month)
	next := first.AddDate(0, 1, 0)

	var out []Event
	for _, e := range all {
		end := e.End
		if end.Before(e.Start) {
			end = e.Start
		}
		if e.Start.Before(next) && !end.Before(first) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// ParseMonth parses a YYYY-MM value, defaulting to the month of now.
func ParseMonth(s string, now time.Time) time.Time {
	if t, err := time.Parse("2006-01", s); err == nil {
		return t
	}
	return firstOfMonth(now)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Day is one cell of a calendar grid.
type Day struct {
	Date    time.Time
	InMonth bool
	Today   bool
	Events  []Event
}

// MonthGrid is a Monday-first calendar of whole weeks covering a month.
type MonthGrid struct {
	Month time.Time
	Weeks [][7]Day
}

// Prev returns the first day of the previous month.
func (g MonthGrid) Prev() time.Time { return g.Month.AddDate(0, -1, 0) }

// Next returns the first day of the following month.
func (g MonthGrid) Next() time.Time { return g.Month.AddDate(0, 1, 0) }

// BuildMonthGrid lays out the month containing month and attaches events to
// every day they cover.
func BuildMonthGrid(month time.Time, all []Event, today time.Time) MonthGrid {
	first := firstOfMonth(month)
	next := first.AddDate(0, 1, 0)
	inMonth := EventsIn(all, first)

	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)

	grid := MonthGrid{Month: first}
	for cursor.Before(next) {
		var week [7]Day
		for i := range week {
			day := Day{
				Date:    cursor,
				InMonth: cursor.Month() == first.Month(),
				Today:   sameDay(cursor, today),
			}
			for _, e := range inMonth {
				if coversDay(e, cursor) {
					day.Events = append(day.Events, e)
				}
			}
			week[i] = day
			cursor = cursor.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

func coversDay(e Event, day time.Time) bool {
	start := time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := e.End
	if end.Before(e.Start) {
		end = e.Start
	}
	return sameDay(day, start) || (!day.Before(start) && day.Before(end))
}
