package models

import (
	"testing"
	"time"

	"github.com/0xb0b1/academy/i18n"
)

func TestFilterCourses(t *testing.T) {
	all := Courses()

	tests := []struct {
		name   string
		filter CourseFilter
		check  func(Course) bool
	}{
		{"category", CourseFilter{Category: CategoryDesign}, func(c Course) bool { return c.Category == CategoryDesign }},
		{"level", CourseFilter{Level: LevelAdvanced}, func(c Course) bool { return c.Level == LevelAdvanced }},
		{"both", CourseFilter{Category: CategoryDigital, Level: LevelBeginner}, func(c Course) bool {
			return c.Category == CategoryDigital && c.Level == LevelBeginner
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCourses(all, tt.filter)
			if len(got) == 0 {
				t.Fatalf("no course matched")
			}
			for _, c := range got {
				if !tt.check(c) {
					t.Fatalf("course %s does not match filter", c.Slug)
				}
			}
		})
	}

	if got := FilterCourses(all, CourseFilter{}); len(got) != len(all) {
		t.Fatalf("empty filter kept %d of %d", len(got), len(all))
	}
}

func TestFilterCoursesSearchUsesLocale(t *testing.T) {
	all := Courses()
	got := FilterCourses(all, CourseFilter{Query: "tableurs", Locale: i18n.FR})
	if len(got) != 1 || got[0].Slug != "data-analysis" {
		t.Fatalf("French search = %v", got)
	}
	if got := FilterCourses(all, CourseFilter{Query: "tableurs", Locale: i18n.EN}); len(got) != 0 {
		t.Fatalf("English search should not match French text, got %v", got)
	}
}

func TestFindCourseAndJob(t *testing.T) {
	if _, ok := FindCourse("web-development"); !ok {
		t.Fatalf("FindCourse(web-development) failed")
	}
	if _, ok := FindCourse("nope"); ok {
		t.Fatalf("FindCourse(nope) should fail")
	}
	if j, ok := FindJob(102); !ok || j.Contract != ContractPartTime {
		t.Fatalf("FindJob(102) = %+v, %t", j, ok)
	}
	if _, ok := FindJob(999); ok {
		t.Fatalf("FindJob(999) should fail")
	}
}

func TestJobsNewestFirst(t *testing.T) {
	list := Jobs()
	for i := 1; i < len(list); i++ {
		if list[i].Posted.After(list[i-1].Posted) {
			t.Fatalf("jobs not sorted newest first")
		}
	}
}

func TestParseFilters(t *testing.T) {
	if ParseCategory("design") != CategoryDesign || ParseCategory("cooking") != "" {
		t.Fatalf("ParseCategory mismatch")
	}
	if ParseLevel("advanced") != LevelAdvanced || ParseLevel("expert") != "" {
		t.Fatalf("ParseLevel mismatch")
	}
	if ParseDashboardTab("schedule") != TabSchedule || ParseDashboardTab("x") != TabOverview {
		t.Fatalf("ParseDashboardTab mismatch")
	}
	if ParseDashboardView("instructor") != ViewInstructor || ParseDashboardView("") != ViewStudent {
		t.Fatalf("ParseDashboardView mismatch")
	}
}

func TestEveryReferencedCourseExists(t *testing.T) {
	now := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	var slugs []string
	for _, tm := range Testimonials() {
		slugs = append(slugs, tm.Course)
	}
	for _, e := range SampleStudent(now).Enrollments {
		slugs = append(slugs, e.CourseSlug)
	}
	slugs = append(slugs, SampleInstructor(now).Courses...)
	for _, slug := range slugs {
		if _, ok := FindCourse(slug); !ok {
			t.Fatalf("unknown course %q", slug)
		}
	}
}

func TestEveryRecordHasFrenchAndEnglish(t *testing.T) {
	var texts []i18n.Text
	for _, c := range Courses() {
		texts = append(texts, c.Title, c.Summary)
		texts = append(texts, c.Syllabus...)
	}
	for _, j := range Jobs() {
		texts = append(texts, j.Title, j.Description)
	}
	for _, f := range FAQ() {
		texts = append(texts, f.Question, f.Answer)
	}
	for _, text := range texts {
		for _, l := range text.Missing() {
			if l != i18n.AR {
				t.Fatalf("text %v is missing %s", text, l)
			}
		}
	}
}

func TestAverageProgress(t *testing.T) {
	s := StudentPreview{Enrollments: []Enrollment{{Progress: 50}, {Progress: 70}}}
	if got := s.AverageProgress(); got != 60 {
		t.Fatalf("AverageProgress() = %d, want 60", got)
	}
	if got := (StudentPreview{}).AverageProgress(); got != 0 {
		t.Fatalf("AverageProgress() on empty = %d", got)
	}
}
