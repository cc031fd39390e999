package models

import "github.com/0xb0b1/academy/i18n"

type FAQItem struct {
	Question i18n.Text
	Answer   i18n.Text
}

type Photo struct {
	Src     string
	Caption i18n.Text
}

var faq = []FAQItem{
	{
		Question: i18n.Text{
			i18n.FR: "Faut-il un diplôme pour s'inscrire ?",
			i18n.AR: "هل يشترط التوفر على شهادة للتسجيل؟",
			i18n.EN: "Do I need a diploma to enroll?",
		},
		Answer: i18n.Text{
			i18n.FR: "Non. Un entretien de motivation et un test de positionnement suffisent.",
			i18n.AR: "لا. تكفي مقابلة تحفيزية واختبار تحديد المستوى.",
			i18n.EN: "No. A motivation interview and a placement test are enough.",
		},
	},
	{
		Question: i18n.Text{
			i18n.FR: "Peut-on payer en plusieurs fois ?",
			i18n.AR: "هل يمكن الأداء على دفعات؟",
			i18n.EN: "Can I pay in installments?",
		},
		Answer: i18n.Text{
			i18n.FR: "Oui, jusqu'à quatre mensualités sans frais.",
			i18n.AR: "نعم، حتى أربعة أقساط شهرية دون مصاريف.",
			i18n.EN: "Yes, up to four monthly payments at no extra cost.",
		},
	},
	{
		Question: i18n.Text{
			i18n.FR: "Les cours ont-ils lieu le soir ?",
			i18n.AR: "هل تقام الدروس في المساء؟",
			i18n.EN: "Are classes held in the evening?",
		},
		Answer: i18n.Text{
			i18n.FR: "La plupart des parcours existent en horaires du soir et du samedi.",
			i18n.AR: "معظم المسارات متوفرة في المساء ويوم السبت.",
			i18n.EN: "Most programs run in evening and Saturday sessions.",
		},
	},
	{
		Question: i18n.Text{
			i18n.FR: "Le certificat est-il reconnu ?",
			i18n.AR: "هل الشهادة معترف بها؟",
			i18n.EN: "Is the certificate recognized?",
		},
		Answer: i18n.Text{
			i18n.FR: "Nos certificats sont co-signés par les entreprises partenaires.",
			i18n.EN: "Our certificates are co-signed by partner companies.",
		},
	},
	{
		Question: i18n.Text{
			i18n.FR: "Proposez-vous des stages ?",
			i18n.AR: "هل تقترحون تداريب؟",
			i18n.EN: "Do you offer internships?",
		},
		Answer: i18n.Text{
			i18n.FR: "Chaque parcours long inclut un stage de quatre à huit semaines.",
			i18n.AR: "كل مسار طويل يتضمن تدريبا من أربعة إلى ثمانية أسابيع.",
			i18n.EN: "Every long program includes a four to eight week internship.",
		},
	},
}

var gallery = []Photo{
	{Src: "/static/img/gallery/classroom.svg", Caption: i18n.Text{i18n.FR: "Salle de cours", i18n.AR: "قاعة الدرس", i18n.EN: "Classroom"}},
	{Src: "/static/img/gallery/lab.svg", Caption: i18n.Text{i18n.FR: "Laboratoire informatique", i18n.AR: "مختبر المعلوميات", i18n.EN: "Computer lab"}},
	{Src: "/static/img/gallery/studio.svg", Caption: i18n.Text{i18n.FR: "Studio design", i18n.AR: "استوديو التصميم", i18n.EN: "Design studio"}},
	{Src: "/static/img/gallery/library.svg", Caption: i18n.Text{i18n.FR: "Bibliothèque", i18n.AR: "المكتبة", i18n.EN: "Library"}},
	{Src: "/static/img/gallery/graduation.svg", Caption: i18n.Text{i18n.FR: "Remise des diplômes 2025", i18n.AR: "حفل التخرج 2025", i18n.EN: "Graduation 2025"}},
	{Src: "/static/img/gallery/meetup.svg", Caption: i18n.Text{i18n.FR: "Rencontre entreprises", i18n.EN: "Employer meetup"}},
}

// FAQ returns the questions of the accordion, in display order.
func FAQ() []FAQItem {
	out := make([]FAQItem, len(faq))
	copy(out, faq)
	return out
}

// Gallery returns the campus photos, in display order.
func Gallery() []Photo {
	out := make([]Photo, len(gallery))
	copy(out, gallery)
	return out
}
