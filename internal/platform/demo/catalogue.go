package demo

import "github.com/carecompanion/carecompanion/internal/domain/tips"

func strp(s string) *string { return &s }

// Catalogue returns the curated health-tip content installed by the seed
// command.
func Catalogue() []tips.Tip {
	return []tips.Tip{
		{
			Title:             "Stay hydrated throughout the day",
			Content:           "Aim for six to eight glasses of water daily. Keep a glass within reach and drink with every meal; thirst signals weaken with age, so do not wait until you feel thirsty.",
			Category:          "hydration",
			AuthorName:        "Dr. Sarah Chen",
			AuthorCredentials: strp("MD, Geriatric Medicine"),
		},
		{
			Title:             "Take medications at the same time each day",
			Content:           "Tie each dose to a daily routine such as breakfast or brushing your teeth. A consistent anchor makes missed doses far less likely than relying on memory alone.",
			Category:          "medication",
			AuthorName:        "James Okafor",
			AuthorCredentials: strp("PharmD"),
		},
		{
			Title:             "A short walk counts",
			Content:           "Ten minutes of walking after a meal helps digestion, blood sugar and mood. Three short walks spread over the day are as valuable as one long one.",
			Category:          "exercise",
			AuthorName:        "Dr. Sarah Chen",
			AuthorCredentials: strp("MD, Geriatric Medicine"),
		},
		{
			Title:             "Check your blood pressure at rest",
			Content:           "Sit quietly for five minutes before measuring, feet flat on the floor, arm supported at heart level. Record the reading right away so the trend over weeks stays accurate.",
			Category:          "monitoring",
			AuthorName:        "Dr. Luis Romero",
			AuthorCredentials: strp("MD, Cardiology"),
		},
		{
			Title:             "Keep a consistent sleep schedule",
			Content:           "Going to bed and waking at the same times steadies the body clock. Dim the lights an hour before bed and keep screens out of the bedroom.",
			Category:          "sleep",
			AuthorName:        "Dr. Amara Osei",
			AuthorCredentials: strp("MD, Sleep Medicine"),
		},
		{
			Title:             "Bring a medication list to every appointment",
			Content:           "Carry an up-to-date list of everything you take, including supplements. It is the fastest way for any clinician to spot interactions and duplications.",
			Category:          "appointments",
			AuthorName:        "James Okafor",
			AuthorCredentials: strp("PharmD"),
		},
		{
			Title:             "Eat protein with every meal",
			Content:           "Muscle loss accelerates with age and protein slows it down. Eggs, fish, beans or yogurt at each meal help maintain strength and balance.",
			Category:          "nutrition",
			AuthorName:        "Elena Vasquez",
			AuthorCredentials: strp("RD, Registered Dietitian"),
		},
		{
			Title:             "Stand up slowly",
			Content:           "Rising quickly can drop blood pressure and cause dizziness. Pause at the edge of the bed or chair, count to five, then stand. It is one of the simplest fall-prevention habits.",
			Category:          "safety",
			AuthorName:        "Dr. Sarah Chen",
			AuthorCredentials: strp("MD, Geriatric Medicine"),
		},
	}
}
