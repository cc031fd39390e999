package models

import (
	"time"

	"github.com/0xb0b1/academy/i18n"
)

type Contract string

const (
	ContractFullTime  Contract = "full_time"
	ContractPartTime  Contract = "part_time"
	ContractFreelance Contract = "freelance"
)

type Job struct {
	ID           int
	Contract     Contract
	Posted       time.Time
	Title        i18n.Text
	Department   i18n.Text
	Location     i18n.Text
	Description  i18n.Text
	Requirements []i18n.Text
}

var jobs = []Job{
	{
		ID:       101,
		Contract: ContractFullTime,
		Posted:   time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
		Title: i18n.Text{
			i18n.FR: "Formateur ou formatrice en développement web",
			i18n.AR: "مكوّن في تطوير الويب",
			i18n.EN: "Web development trainer",
		},
		Department: i18n.Text{i18n.FR: "Pédagogie", i18n.AR: "البيداغوجيا", i18n.EN: "Teaching"},
		Location:   i18n.Text{i18n.FR: "Casablanca", i18n.AR: "الدار البيضاء", i18n.EN: "Casablanca"},
		Description: i18n.Text{
			i18n.FR: "Animer le parcours développement web et accompagner les projets de fin de formation.",
			i18n.AR: "تأطير مسار تطوير الويب ومواكبة مشاريع التخرج.",
			i18n.EN: "Lead the web development program and mentor capstone projects.",
		},
		Requirements: []i18n.Text{
			{i18n.FR: "Trois ans d'expérience en développement", i18n.AR: "ثلاث سنوات خبرة في التطوير", i18n.EN: "Three years of development experience"},
			{i18n.FR: "Goût pour la transmission", i18n.AR: "حب نقل المعرفة", i18n.EN: "A taste for teaching"},
		},
	},
	{
		ID:       102,
		Contract: ContractPartTime,
		Posted:   time.Date(2026, time.September, 22, 0, 0, 0, 0, time.UTC),
		Title: i18n.Text{
			i18n.FR: "Conseiller ou conseillère en orientation",
			i18n.AR: "مستشار في التوجيه",
			i18n.EN: "Career advisor",
		},
		Department: i18n.Text{i18n.FR: "Accompagnement", i18n.AR: "المواكبة", i18n.EN: "Student services"},
		Location:   i18n.Text{i18n.FR: "Rabat", i18n.AR: "الرباط", i18n.EN: "Rabat"},
		Description: i18n.Text{
			i18n.FR: "Recevoir les candidats et les aider à choisir leur parcours.",
			i18n.AR: "استقبال المترشحين ومساعدتهم على اختيار مسارهم.",
			i18n.EN: "Meet applicants and help them choose their program.",
		},
		Requirements: []i18n.Text{
			{i18n.FR: "Expérience en orientation ou en RH", i18n.AR: "خبرة في التوجيه أو الموارد البشرية", i18n.EN: "Experience in guidance or HR"},
			{i18n.FR: "Trilingue français, arabe, anglais", i18n.AR: "إتقان الفرنسية والعربية والإنجليزية", i18n.EN: "Fluent in French, Arabic and English"},
		},
	},
	{
		ID:       103,
		Contract: ContractFreelance,
		Posted:   time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		Title: i18n.Text{
			i18n.FR: "Intervenant en motion design",
			i18n.EN: "Motion design guest lecturer",
		},
		Department: i18n.Text{i18n.FR: "Design", i18n.AR: "التصميم", i18n.EN: "Design"},
		Location:   i18n.Text{i18n.FR: "À distance", i18n.AR: "عن بعد", i18n.EN: "Remote"},
		Description: i18n.Text{
			i18n.FR: "Assurer des ateliers ponctuels sur l'animation 2D.",
			i18n.EN: "Run occasional workshops on 2D animation.",
		},
		Requirements: []i18n.Text{
			{i18n.FR: "Portfolio en animation", i18n.EN: "An animation portfolio"},
		},
	},
}

// Jobs returns the open positions, newest first.
func Jobs() []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FindJob returns the opening with the given ID.
func FindJob(id int) (Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}
