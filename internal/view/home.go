package view

import (
	"html"
	"html/template"
	"strings"

	"github.com/reprogrammability/tutorsite/internal/calendar"
	"github.com/reprogrammability/tutorsite/internal/content"
)

// HomePage is the landing page.
type HomePage struct {
	Title            string
	Description      template.HTML
	Conference       string
	Duration         string
	Date             string
	Venue            string
	OfficialLink     string
	Contacts         []Link
	LearningOutcomes []string
	ParentProject    string
	CalendarHref     string
	CalendarFile     string
	QuickLinks       []QuickLink
}

// QuickLink is a navigation card on the home page.
type QuickLink struct {
	Title   string
	Summary string
	Href    string
}

// Multiline escapes s and turns each newline into a line break.
func Multiline(s string) template.HTML {
	return template.HTML(strings.ReplaceAll(html.EscapeString(s), "\n", "<br>"))
}

// ContactLinks maps contacts to links; e-mail contacts become mailto links.
func ContactLinks(cs content.Contacts) []Link {
	links := make([]Link, 0, len(cs))
	for _, c := range cs {
		if c.Href() == "" {
			continue
		}
		links = append(links, Link{Label: c.Label(), Href: c.Href(), External: c.Email == ""})
	}
	return links
}

// Home builds the landing page. Learning outcomes keep document order.
func Home(t *content.Tutorial, o Options) HomePage {
	file := calendar.TutorialFilename(t.Title)
	return HomePage{
		Title:            t.Title,
		Description:      Multiline(t.Description),
		Conference:       t.Conference,
		Duration:         t.Duration,
		Date:             t.Date,
		Venue:            t.Venue.String(),
		OfficialLink:     t.OfficialLink,
		Contacts:         ContactLinks(t.Contact),
		LearningOutcomes: t.LearningOutcomes,
		ParentProject:    t.ProjectContext.ParentProject,
		CalendarHref:     o.Asset("calendar/" + file),
		CalendarFile:     file,
		QuickLinks: []QuickLink{
			{Title: "Program", Summary: "View the detailed session schedule and topics", Href: o.Href("program")},
			{Title: "Speakers", Summary: "Meet the tutorial presenters and experts", Href: o.Href("speakers")},
			{Title: "Materials", Summary: "Access slides, videos, and code examples", Href: o.Href("materials")},
		},
	}
}
