package models

import (
	"testing"
	"time"
)

func TestBuildMonthGridOctober2026(t *testing.T) {
	month := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(month, Events(), today)

	if len(grid.Weeks) != 5 {
		t.Fatalf("len(Weeks) = %d, want 5", len(grid.Weeks))
	}
	first := grid.Weeks[0][0]
	if first.Date.Weekday() != time.Monday || first.InMonth {
		t.Fatalf("grid should start on the Monday before the month, got %v", first.Date)
	}
	if d := grid.Weeks[0][3]; d.Date.Day() != 1 || !d.InMonth {
		t.Fatalf("October 1st should be the first Thursday cell, got %v", d.Date)
	}

	openDay := grid.Weeks[2][5]
	if openDay.Date.Day() != 17 || len(openDay.Events) != 1 || openDay.Events[0].ID != "open-day-october" {
		t.Fatalf("open day cell = %+v", openDay)
	}
	if !grid.Weeks[2][2].Today {
		t.Fatalf("October 14th should be flagged as today")
	}

	for _, day := range []Day{grid.Weeks[4][2], grid.Weeks[4][3]} {
		if len(day.Events) != 1 || day.Events[0].ID != "portfolio-workshop" {
			t.Fatalf("multi-day event missing on %v", day.Date)
		}
	}
	if len(grid.Weeks[4][4].Events) != 0 {
		t.Fatalf("event should end on October 29th")
	}
}

func TestBuildMonthGridExactWeeks(t *testing.T) {
	grid := BuildMonthGrid(time.Date(2021, time.February, 10, 0, 0, 0, 0, time.UTC), nil, time.Time{})
	if len(grid.Weeks) != 4 {
		t.Fatalf("February 2021 should fit four weeks, got %d", len(grid.Weeks))
	}
	if !grid.Prev().Equal(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Prev() = %v", grid.Prev())
	}
	if !grid.Next().Equal(time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Next() = %v", grid.Next())
	}
}

func TestEventsIn(t *testing.T) {
	nov := EventsIn(Events(), time.Date(2026, time.November, 20, 0, 0, 0, 0, time.UTC))
	if len(nov) != 1 || nov[0].ID != "employer-meetup" {
		t.Fatalf("EventsIn(November) = %v", nov)
	}
	if got := EventsIn(Events(), time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)); len(got) != 0 {
		t.Fatalf("EventsIn(March 2027) = %v", got)
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	if got := ParseMonth("2026-12", now); got.Month() != time.December || got.Year() != 2026 {
		t.Fatalf("ParseMonth(2026-12) = %v", got)
	}
	if got := ParseMonth("garbage", now); !got.Equal(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseMonth(garbage) = %v", got)
	}
}
