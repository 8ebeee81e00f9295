package view

import "github.com/reprogrammability/tutorsite/internal/content"

// FAQ is one question on the contact page.
type FAQ struct {
	Question string
	Answer   string
}

// ContactPage holds contacts, logistics and the FAQ.
type ContactPage struct {
	Contacts     []Link
	Conference   string
	Date         string
	Duration     string
	Timezone     string
	Location     string
	Room         string
	OfficialLink string
	FAQ          []FAQ
	Preparation  []Link
}

var faqs = []FAQ{
	{
		Question: "Who should attend this tutorial?",
		Answer:   "Researchers and practitioners interested in parameter-efficient AI, foundation model adaptation, and trustworthy AI systems. Basic machine learning knowledge is recommended.",
	},
	{
		Question: "What background is needed?",
		Answer:   "Basic machine learning knowledge and familiarity with deep learning concepts. Prior experience with neural networks and optimization will be helpful but not required.",
	},
	{
		Question: "Will materials be available after the tutorial?",
		Answer:   "Yes, all slides, videos, code examples, and additional resources will be posted on this website and remain accessible indefinitely.",
	},
	{
		Question: "Is there a virtual attendance option?",
		Answer:   "Please check the official conference website for information about virtual attendance options and hybrid formats.",
	},
	{
		Question: "Can I use the tutorial materials for teaching?",
		Answer:   "Yes, all materials are available under open licenses. Please see the citation page for proper attribution requirements.",
	},
}

// Contact builds the contact and logistics page.
func Contact(t *content.Tutorial, o Options) ContactPage {
	return ContactPage{
		Contacts:     ContactLinks(t.Contact),
		Conference:   t.Conference,
		Date:         t.Date,
		Duration:     t.Duration,
		Timezone:     t.Timezone,
		Location:     t.Venue.Location,
		Room:         t.Venue.Room,
		OfficialLink: t.OfficialLink,
		FAQ:          faqs,
		Preparation: []Link{
			{Label: "Essential reading list", Href: o.Href("reading")},
			{Label: "Code examples and notebooks", Href: o.Href("materials")},
			{Label: "Detailed session agenda", Href: o.Href("program")},
		},
	}
}
