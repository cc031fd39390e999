package models

import (
	"time"

	"github.com/0xb0b1/academy/i18n"
)

// Enrollment is a course a sample student follows.
type Enrollment struct {
	CourseSlug string
	Progress   int
}

// Session is an upcoming class slot.
type Session struct {
	CourseSlug string
	Start      time.Time
	Room       string
}

// StudentPreview is the sample data behind the student dashboard preview.
type StudentPreview struct {
	Name         string
	Enrollments  []Enrollment
	Sessions     []Session
	Certificates []i18n.Text
}

// InstructorPreview is the sample data behind the instructor dashboard preview.
type InstructorPreview struct {
	Name          string
	Courses       []string
	Students      int
	AverageRating float64
	Sessions      []Session
}

// DashboardView selects which preview is shown.
type DashboardView string

const (
	ViewStudent    DashboardView = "student"
	ViewInstructor DashboardView = "instructor"
)

// DashboardTab selects the active tab of a preview.
type DashboardTab string

const (
	TabOverview DashboardTab = "overview"
	TabCourses  DashboardTab = "courses"
	TabSchedule DashboardTab = "schedule"
)

// DashboardTabs lists the tabs in display order.
func DashboardTabs() []DashboardTab {
	return []DashboardTab{TabOverview, TabCourses, TabSchedule}
}

// ParseDashboardTab returns the tab named s, defaulting to the overview.
func ParseDashboardTab(s string) DashboardTab {
	for _, t := range DashboardTabs() {
		if string(t) == s {
			return t
		}
	}
	return TabOverview
}

// ParseDashboardView returns the view named s, defaulting to the student one.
func ParseDashboardView(s string) DashboardView {
	if DashboardView(s) == ViewInstructor {
		return ViewInstructor
	}
	return ViewStudent
}

// SampleStudent returns the student preview. Session times are placed in the
// week following now.
func SampleStudent(now time.Time) StudentPreview {
	base := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, time.UTC)
	return StudentPreview{
		Name: "Salma K.",
		Enrollments: []Enrollment{
			{CourseSlug: "web-development", Progress: 72},
			{CourseSlug: "business-english", Progress: 35},
		},
		Sessions: []Session{
			{CourseSlug: "web-development", Start: base.AddDate(0, 0, 1), Room: "B12"},
			{CourseSlug: "business-english", Start: base.AddDate(0, 0, 3), Room: "A04"},
			{CourseSlug: "web-development", Start: base.AddDate(0, 0, 5), Room: "B12"},
		},
		Certificates: []i18n.Text{
			{i18n.FR: "Fondamentaux du web", i18n.AR: "أساسيات الويب", i18n.EN: "Web fundamentals"},
		},
	}
}

// SampleInstructor returns the instructor preview.
func SampleInstructor(now time.Time) InstructorPreview {
	base := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, time.UTC)
	return InstructorPreview{
		Name:          "Youssef Amrani",
		Courses:       []string{"web-development", "data-analysis"},
		Students:      48,
		AverageRating: 4.7,
		Sessions: []Session{
			{CourseSlug: "data-analysis", Start: base.AddDate(0, 0, 1), Room: "C02"},
			{CourseSlug: "web-development", Start: base.AddDate(0, 0, 2), Room: "B12"},
		},
	}
}

// AverageProgress is the mean progress over the enrollments.
func (s StudentPreview) AverageProgress() int {
	if len(s.Enrollments) == 0 {
		return 0
	}
	total := 0
	for _, e := range s.Enrollments {
		total += e.Progress
	}
	return total / len(s.Enrollments)
}
