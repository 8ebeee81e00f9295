package view

import (
	"fmt"
	"sort"

	"github.com/reprogrammability/tutorsite/internal/calendar"
	"github.com/reprogrammability/tutorsite/internal/content"
)

// TopicLayout controls how a session's topics are laid out.
type TopicLayout int

const (
	// TopicsFlat renders every topic as one bullet list.
	TopicsFlat TopicLayout = iota
	// TopicsIntro renders the first topic as a paragraph and the rest as bullets.
	TopicsIntro
)

// LayoutFor returns the topic layout each variant has always used.
func LayoutFor(v Variant) TopicLayout {
	if v == Legacy {
		return TopicsIntro
	}
	return TopicsFlat
}

// SessionCard is one session on the program page.
type SessionCard struct {
	Order         int
	Heading       string
	Title         string
	Presenter     string
	Duration      string
	Intro         string
	Topics        []string
	BreakAfter    string
	MaterialsHref string
	CalendarHref  string
	CalendarFile  string
}

// ProgramPage lists the sessions.
type ProgramPage struct {
	Sessions []SessionCard
}

// Program builds one card per session in ascending order. Sessions sharing
// an order keep their document order.
func Program(p *content.Program, layout TopicLayout, o Options) ProgramPage {
	sessions := make([]content.Session, len(p.Sessions))
	copy(sessions, p.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].Order < sessions[j].Order })

	cards := make([]SessionCard, 0, len(sessions))
	for _, s := range sessions {
		file := calendar.SessionFilename(s.Order)
		card := SessionCard{
			Order:         s.Order,
			Heading:       fmt.Sprintf("Session %d: %s", s.Order, s.Title),
			Title:         s.Title,
			Presenter:     s.Presenter,
			Duration:      s.Duration,
			Topics:        s.Topics,
			BreakAfter:    s.BreakAfter,
			MaterialsHref: o.Href("materials"),
			CalendarHref:  o.Asset("calendar/" + file),
			CalendarFile:  file,
		}
		if layout == TopicsIntro && len(s.Topics) > 0 {
			card.Intro = s.Topics[0]
			card.Topics = s.Topics[1:]
		}
		if s.HasSlides() {
			card.MaterialsHref = s.Slides
		}
		cards = append(cards, card)
	}
	return ProgramPage{Sessions: cards}
}
