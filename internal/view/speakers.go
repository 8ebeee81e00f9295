package view

import (
	"strings"
	"unicode/utf8"

	"github.com/reprogrammability/tutorsite/internal/content"
)

// SpeakerCard is one presenter.
type SpeakerCard struct {
	Name        string
	Initials    string
	Affiliation string
	Email       string
	EmailHref   string
	Bio         string
	Sessions    []string
	ProgramHref string
}

// SpeakersPage lists the presenters.
type SpeakersPage struct {
	Speakers []SpeakerCard
}

// Initials concatenates the first character of each space-separated token.
func Initials(name string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(r)
	}
	return b.String()
}

// Speakers builds one card per speaker in listed order.
func Speakers(s *content.Speakers, o Options) SpeakersPage {
	cards := make([]SpeakerCard, 0, len(s.Speakers))
	for _, sp := range s.Speakers {
		card := SpeakerCard{
			Name:        sp.Name,
			Initials:    Initials(sp.Name),
			Affiliation: sp.Affiliation,
			Email:       sp.Email,
			Bio:         sp.Bio,
			Sessions:    sp.Sessions,
			ProgramHref: o.Href("program"),
		}
		if sp.Email != "" {
			card.EmailHref = "mailto:" + sp.Email
		}
		cards = append(cards, card)
	}
	return SpeakersPage{Speakers: cards}
}
