package models

import "github.com/0xb0b1/academy/i18n"

type TeamMember struct {
	Name  string
	Photo string
	Role  i18n.Text
	Bio   i18n.Text
}

type Testimonial struct {
	Author string
	Course string
	Rating int
	Quote  i18n.Text
}

var team = []TeamMember{
	{
		Name:  "Nadia Benali",
		Photo: "/static/img/team/nadia.svg",
		Role:  i18n.Text{i18n.FR: "Directrice", i18n.AR: "المديرة", i18n.EN: "Director"},
		Bio: i18n.Text{
			i18n.FR: "Quinze ans dans la formation professionnelle, fondatrice de l'académie.",
			i18n.AR: "خمس عشرة سنة في التكوين المهني، مؤسسة الأكاديمية.",
			i18n.EN: "Fifteen years in vocational training, founder of the academy.",
		},
	},
	{
		Name:  "Youssef Amrani",
		Photo: "/static/img/team/youssef.svg",
		Role:  i18n.Text{i18n.FR: "Responsable pédagogique", i18n.AR: "المسؤول البيداغوجي", i18n.EN: "Head of curriculum"},
		Bio: i18n.Text{
			i18n.FR: "Ancien développeur, il conçoit les parcours numériques avec nos partenaires.",
			i18n.AR: "مطور سابق، يصمم المسارات الرقمية مع شركائنا.",
			i18n.EN: "A former developer who designs the digital programs with our partners.",
		},
	},
	{
		Name:  "Claire Moreau",
		Photo: "/static/img/team/claire.svg",
		Role:  i18n.Text{i18n.FR: "Formatrice design", i18n.AR: "مكوّنة في التصميم", i18n.EN: "Design trainer"},
		Bio: i18n.Text{
			i18n.FR: "Designer produit, elle enseigne la recherche utilisateur et le prototypage.",
			i18n.EN: "A product designer teaching user research and prototyping.",
		},
	},
	{
		Name:  "Omar Tazi",
		Photo: "/static/img/team/omar.svg",
		Role:  i18n.Text{i18n.FR: "Relations entreprises", i18n.AR: "العلاقات مع المقاولات", i18n.EN: "Employer relations"},
		Bio: i18n.Text{
			i18n.FR: "Il développe le réseau de stages et suit l'insertion des diplômés.",
			i18n.AR: "يطور شبكة التداريب ويتابع إدماج الخريجين.",
			i18n.EN: "He grows the internship network and follows graduate placement.",
		},
	},
}

var testimonials = []Testimonial{
	{
		Author: "Salma K.",
		Course: "web-development",
		Rating: 5,
		Quote: i18n.Text{
			i18n.FR: "Quatre mois après la formation, je travaille comme développeuse junior.",
			i18n.AR: "بعد أربعة أشهر من التكوين أصبحت أعمل مطورة مبتدئة.",
			i18n.EN: "Four months after the program I am working as a junior developer.",
		},
	},
	{
		Author: "Mehdi R.",
		Course: "digital-marketing",
		Rating: 4,
		Quote: i18n.Text{
			i18n.FR: "Des formateurs disponibles et des cas concrets à chaque séance.",
			i18n.AR: "مكونون متاحون وحالات واقعية في كل حصة.",
			i18n.EN: "Trainers who make time for you and real cases in every session.",
		},
	},
	{
		Author: "Julie P.",
		Course: "ui-ux-design",
		Rating: 5,
		Quote: i18n.Text{
			i18n.FR: "Mon portfolio de fin de parcours m'a ouvert les portes d'une agence.",
			i18n.EN: "My capstone portfolio got me hired by an agency.",
		},
	},
	{
		Author: "Hamza B.",
		Course: "business-english",
		Rating: 4,
		Quote: i18n.Text{
			i18n.FR: "Je mène désormais mes réunions en anglais sans stress.",
			i18n.AR: "أصبحت أدير اجتماعاتي بالإنجليزية دون توتر.",
			i18n.EN: "I now run my meetings in English without stress.",
		},
	},
}

// Team returns the academy staff.
func Team() []TeamMember {
	out := make([]TeamMember, len(team))
	copy(out, team)
	return out
}

// Testimonials returns the graduate quotes shown in the carousel.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}
