// Package calendar builds iCalendar (.ics) payloads for the tutorial and its
// sessions.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/reprogrammability/tutorsite/internal/content"
)

// ProductID is the PRODID written into every calendar.
const ProductID = "-//Tutorial//Neural Network Reprogrammability//EN"

// DefaultDomain is the UID domain used when none is configured.
const DefaultDomain = "tutorial-website"

// Fallback times for events without a schedule: 2:00 PM to 5:30 PM SGT on
// the tutorial day.
var (
	DefaultStart = time.Date(2026, time.January, 21, 6, 0, 0, 0, time.UTC)
	DefaultEnd   = time.Date(2026, time.January, 21, 9, 30, 0, 0, time.UTC)
)

// Defaults fills in what a content document leaves out.
type Defaults struct {
	Domain string
	Start  time.Time
	End    time.Time
}

// DefaultDefaults returns the built-in fallbacks.
func DefaultDefaults() Defaults {
	return Defaults{Domain: DefaultDomain, Start: DefaultStart, End: DefaultEnd}
}

func (d Defaults) domain() string {
	if d.Domain == "" {
		return DefaultDomain
	}
	return d.Domain
}

// Event is one VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// span parses an RFC 3339 start/end pair, falling back to d when either is
// missing or malformed.
func span(start, end string, d Defaults) (time.Time, time.Time) {
	s, errS := time.Parse(time.RFC3339, start)
	e, errE := time.Parse(time.RFC3339, end)
	if errS != nil || errE != nil || !e.After(s) {
		return d.Start, d.End
	}
	return s, e
}

func location(t *content.Tutorial) string {
	if loc := t.Venue.String(); loc != "" {
		return loc
	}
	if t.Conference != "" {
		return t.Conference + " Conference Venue"
	}
	return ""
}

// SessionEvent describes one program session. The UID is stable per session.
func SessionEvent(t *content.Tutorial, s content.Session, d Defaults) Event {
	start, end := span(s.Start, s.End, d)
	var desc strings.Builder
	fmt.Fprintf(&desc, "Presenter: %s\n\nTopics:\n", s.Presenter)
	desc.WriteString(strings.Join(s.Topics, "\n"))
	return Event{
		UID:         fmt.Sprintf("session-%d@%s", s.Order, d.domain()),
		Summary:     s.Title,
		Description: desc.String(),
		Location:    location(t),
		Start:       start,
		End:         end,
	}
}

// TutorialEvent describes the whole tutorial. The UID is unique per call.
func TutorialEvent(t *content.Tutorial, d Defaults) Event {
	start, end := span(t.Schedule.Start, t.Schedule.End, d)
	return Event{
		UID:         fmt.Sprintf("%s-%s@%s", Slug(t.Title), uuid.NewString(), d.domain()),
		Summary:     t.Title,
		Description: t.Description,
		Location:    location(t),
		Start:       start,
		End:         end,
	}
}

// Render serializes events into a VCALENDAR document. stamp becomes DTSTAMP.
func Render(stamp time.Time, events ...Event) []byte {
	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	for _, ev := range events {
		e := cal.AddEvent(ev.UID)
		e.SetDtStampTime(stamp.UTC())
		e.SetStartAt(ev.Start.UTC())
		e.SetEndAt(ev.End.UTC())
		e.SetSummary(ev.Summary)
		if ev.Description != "" {
			e.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			e.SetLocation(ev.Location)
		}
	}
	return []byte(cal.Serialize())
}

// SessionFilename is the download name for a session's calendar file.
func SessionFilename(order int) string {
	return fmt.Sprintf("session-%d.ics", order)
}

// TutorialFilename is the download name for the tutorial's calendar file.
func TutorialFilename(title string) string {
	slug := Slug(title)
	if slug == "" {
		slug = "tutorial"
	}
	return slug + ".ics"
}

// Slug lower-cases s and joins its alphanumeric runs with hyphens.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
