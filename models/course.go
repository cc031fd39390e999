package models

import (
	"strings"

	"github.com/0xb0b1/academy/i18n"
)

type Category string

const (
	CategoryDigital   Category = "digital"
	CategoryBusiness  Category = "business"
	CategoryDesign    Category = "design"
	CategoryLanguages Category = "languages"
)

// Categories lists the catalog categories in display order.
func Categories() []Category {
	return []Category{CategoryDigital, CategoryBusiness, CategoryDesign, CategoryLanguages}
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists the course levels in display order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

type Course struct {
	Slug     string
	Category Category
	Level    Level
	Weeks    int
	PriceMAD int
	Featured bool
	Title    i18n.Text
	Summary  i18n.Text
	Syllabus []i18n.Text
}

var courses = []Course{
	{
		Slug:     "web-development",
		Category: CategoryDigital,
		Level:    LevelBeginner,
		Weeks:    16,
		PriceMAD: 14000,
		Featured: true,
		Title: i18n.Text{
			i18n.FR: "Développement web",
			i18n.AR: "تطوير الويب",
			i18n.EN: "Web development",
		},
		Summary: i18n.Text{
			i18n.FR: "HTML, CSS, JavaScript et un framework back-end pour livrer votre premier site en production.",
			i18n.AR: "HTML وCSS وJavaScript وإطار خلفي لإطلاق موقعك الأول.",
			i18n.EN: "HTML, CSS, JavaScript and a back-end framework to ship your first production site.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Fondamentaux du web", i18n.AR: "أساسيات الويب", i18n.EN: "Web fundamentals"},
			{i18n.FR: "JavaScript moderne", i18n.AR: "JavaScript الحديث", i18n.EN: "Modern JavaScript"},
			{i18n.FR: "API et bases de données", i18n.AR: "الواجهات البرمجية وقواعد البيانات", i18n.EN: "APIs and databases"},
			{i18n.FR: "Projet de fin de parcours", i18n.AR: "مشروع التخرج", i18n.EN: "Capstone project"},
		},
	},
	{
		Slug:     "data-analysis",
		Category: CategoryDigital,
		Level:    LevelIntermediate,
		Weeks:    12,
		PriceMAD: 12000,
		Featured: true,
		Title: i18n.Text{
			i18n.FR: "Analyse de données",
			i18n.AR: "تحليل البيانات",
			i18n.EN: "Data analysis",
		},
		Summary: i18n.Text{
			i18n.FR: "Tableurs avancés, SQL et visualisation pour éclairer les décisions.",
			i18n.AR: "جداول بيانات متقدمة وSQL وتصوير البيانات لدعم القرار.",
			i18n.EN: "Advanced spreadsheets, SQL and visualization to support decisions.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Nettoyage des données", i18n.AR: "تنظيف البيانات", i18n.EN: "Data cleaning"},
			{i18n.FR: "Requêtes SQL", i18n.AR: "استعلامات SQL", i18n.EN: "SQL queries"},
			{i18n.FR: "Tableaux de bord", i18n.AR: "لوحات القيادة", i18n.EN: "Dashboards"},
		},
	},
	{
		Slug:     "digital-marketing",
		Category: CategoryBusiness,
		Level:    LevelBeginner,
		Weeks:    8,
		PriceMAD: 7500,
		Featured: true,
		Title: i18n.Text{
			i18n.FR: "Marketing digital",
			i18n.AR: "التسويق الرقمي",
			i18n.EN: "Digital marketing",
		},
		Summary: i18n.Text{
			i18n.FR: "Réseaux sociaux, référencement et campagnes payantes mesurées.",
			i18n.AR: "الشبكات الاجتماعية وتحسين محركات البحث والحملات المدفوعة.",
			i18n.EN: "Social media, search optimization and measured paid campaigns.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Stratégie de contenu", i18n.AR: "استراتيجية المحتوى", i18n.EN: "Content strategy"},
			{i18n.FR: "Référencement naturel", i18n.AR: "تحسين محركات البحث", i18n.EN: "Search engine optimization"},
			{i18n.FR: "Publicité en ligne", i18n.AR: "الإعلان الرقمي", i18n.EN: "Online advertising"},
		},
	},
	{
		Slug:     "accounting-essentials",
		Category: CategoryBusiness,
		Level:    LevelIntermediate,
		Weeks:    10,
		PriceMAD: 8000,
		Title: i18n.Text{
			i18n.FR: "Comptabilité essentielle",
			i18n.AR: "أساسيات المحاسبة",
			i18n.EN: "Accounting essentials",
		},
		Summary: i18n.Text{
			i18n.FR: "Tenue des comptes, fiscalité courante et logiciels de gestion.",
			i18n.AR: "مسك الحسابات والجبايات الجارية وبرامج التسيير.",
			i18n.EN: "Bookkeeping, everyday taxation and accounting software.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Plan comptable", i18n.AR: "المخطط المحاسبي", i18n.EN: "Chart of accounts"},
			{i18n.FR: "Déclarations fiscales", i18n.AR: "التصريحات الضريبية", i18n.EN: "Tax returns"},
		},
	},
	{
		Slug:     "ui-ux-design",
		Category: CategoryDesign,
		Level:    LevelIntermediate,
		Weeks:    12,
		PriceMAD: 11000,
		Featured: true,
		Title: i18n.Text{
			i18n.FR: "Design UI/UX",
			i18n.AR: "تصميم واجهات وتجربة المستخدم",
			i18n.EN: "UI/UX design",
		},
		Summary: i18n.Text{
			i18n.FR: "Recherche utilisateur, maquettes et prototypes interactifs.",
			i18n.AR: "بحث المستخدم والنماذج الأولية التفاعلية.",
			i18n.EN: "User research, wireframes and interactive prototypes.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Recherche utilisateur", i18n.AR: "بحث المستخدم", i18n.EN: "User research"},
			{i18n.FR: "Systèmes de design", i18n.AR: "أنظمة التصميم", i18n.EN: "Design systems"},
			{i18n.FR: "Prototypage", i18n.AR: "النمذجة", i18n.EN: "Prototyping"},
		},
	},
	{
		Slug:     "motion-graphics",
		Category: CategoryDesign,
		Level:    LevelAdvanced,
		Weeks:    10,
		PriceMAD: 12500,
		Title: i18n.Text{
			i18n.FR: "Motion design",
			i18n.EN: "Motion graphics",
		},
		Summary: i18n.Text{
			i18n.FR: "Animation 2D, montage et habillage vidéo pour les marques.",
			i18n.EN: "2D animation, editing and video branding.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Principes d'animation", i18n.EN: "Animation principles"},
			{i18n.FR: "Montage", i18n.EN: "Editing"},
		},
	},
	{
		Slug:     "business-english",
		Category: CategoryLanguages,
		Level:    LevelBeginner,
		Weeks:    8,
		PriceMAD: 4500,
		Title: i18n.Text{
			i18n.FR: "Anglais des affaires",
			i18n.AR: "الإنجليزية للأعمال",
			i18n.EN: "Business English",
		},
		Summary: i18n.Text{
			i18n.FR: "Réunions, e-mails et présentations en anglais professionnel.",
			i18n.AR: "الاجتماعات والمراسلات والعروض بالإنجليزية المهنية.",
			i18n.EN: "Meetings, emails and presentations in professional English.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Communication écrite", i18n.AR: "التواصل الكتابي", i18n.EN: "Written communication"},
			{i18n.FR: "Prise de parole", i18n.AR: "التحدث أمام الجمهور", i18n.EN: "Public speaking"},
		},
	},
	{
		Slug:     "french-for-work",
		Category: CategoryLanguages,
		Level:    LevelAdvanced,
		Weeks:    6,
		PriceMAD: 4000,
		Title: i18n.Text{
			i18n.FR: "Français professionnel",
			i18n.AR: "الفرنسية المهنية",
			i18n.EN: "French for work",
		},
		Summary: i18n.Text{
			i18n.FR: "Rédaction administrative et entretiens d'embauche en français.",
			i18n.AR: "التحرير الإداري ومقابلات العمل بالفرنسية.",
			i18n.EN: "Administrative writing and job interviews in French.",
		},
		Syllabus: []i18n.Text{
			{i18n.FR: "Rédaction professionnelle", i18n.AR: "التحرير المهني", i18n.EN: "Professional writing"},
			{i18n.FR: "Entretiens", i18n.AR: "المقابلات", i18n.EN: "Interviews"},
		},
	},
}

// Courses returns the full catalog.
func Courses() []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}

// FeaturedCourses returns the courses highlighted on the home page.
func FeaturedCourses() []Course {
	var out []Course
	for _, c := range courses {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out
}

// FindCourse returns the course with the given slug.
func FindCourse(slug string) (Course, bool) {
	for _, c := range courses {
		if c.Slug == slug {
			return c, true
		}
	}
	return Course{}, false
}

// CourseFilter narrows the catalog. Zero values match everything.
type CourseFilter struct {
	Category Category
	Level    Level
	Query    string
	Locale   i18n.Locale
}

// FilterCourses returns the courses matching f, in catalog order.
func FilterCourses(all []Course, f CourseFilter) []Course {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []Course
	for _, c := range all {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Level != "" && c.Level != f.Level {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title.In(f.Locale)), query) &&
			!strings.Contains(strings.ToLower(c.Summary.In(f.Locale)), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ParseCategory returns the category named s, or "" when s names none.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return ""
}

// ParseLevel returns the level named s, or "" when s names none.
func ParseLevel(s string) Level {
	for _, l := range Levels() {
		if string(l) == s {
			return l
		}
	}
	return ""
}
