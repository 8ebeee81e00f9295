package content

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder marks a material or link that has not been published yet.
const Placeholder = "TBD"

// Tutorial is the singleton event document (tutorial.yaml).
type Tutorial struct {
	Title            string         `yaml:"title" json:"title"`
	Conference       string         `yaml:"conference" json:"conference"`
	Date             string         `yaml:"date" json:"date"`
	Duration         string         `yaml:"duration" json:"duration"`
	Venue            Venue          `yaml:"venue" json:"venue"`
	Timezone         string         `yaml:"timezone" json:"timezone"`
	OfficialLink     string         `yaml:"official_link" json:"official_link"`
	Contact          Contacts       `yaml:"contact" json:"contact"`
	Description      string         `yaml:"description,omitempty" json:"description,omitempty"`
	LearningOutcomes []string       `yaml:"learning_outcomes,omitempty" json:"learning_outcomes,omitempty"`
	ProjectContext   ProjectContext `yaml:"project_context" json:"project_context"`
	Schedule         Schedule       `yaml:"schedule,omitempty" json:"schedule,omitempty"`
}

// ProjectContext links the tutorial to its parent project.
type ProjectContext struct {
	ParentProject string `yaml:"parent_project" json:"parent_project"`
	WebsitePath   string `yaml:"website_path" json:"website_path"`
	Repository    string `yaml:"repository" json:"repository"`
}

// Schedule holds optional RFC 3339 instants used for calendar export.
type Schedule struct {
	Start string `yaml:"start,omitempty" json:"start,omitempty"`
	End   string `yaml:"end,omitempty" json:"end,omitempty"`
}

// Venue is where the tutorial takes place. Older documents give it as a
// single string, which is read as the location.
type Venue struct {
	Location string `yaml:"location" json:"location"`
	Room     string `yaml:"room,omitempty" json:"room,omitempty"`
}

// String joins location and room for single-line display. A placeholder
// room is left out.
func (v Venue) String() string {
	room := v.Room
	if !published(room) {
		room = ""
	}
	switch {
	case v.Location != "" && room != "":
		return v.Location + ", " + room
	case room != "":
		return room
	default:
		return v.Location
	}
}

func (v *Venue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*v = Venue{Location: node.Value}
		return nil
	}
	type plain Venue
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Venue(p)
	return nil
}

func (v *Venue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Venue{Location: s}
		return nil
	}
	type plain Venue
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = Venue(p)
	return nil
}

// Contact is one organiser reachable by e-mail, homepage, or both.
type Contact struct {
	Name     string `yaml:"name" json:"name"`
	Email    string `yaml:"email,omitempty" json:"email,omitempty"`
	Homepage string `yaml:"homepage,omitempty" json:"homepage,omitempty"`
}

// contactFromString interprets a bare contact value: anything with an @ that
// is not a URL is an e-mail address, everything else a homepage.
func contactFromString(s string) Contact {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "@") && !strings.Contains(s, "://") {
		email := strings.TrimPrefix(s, "mailto:")
		return Contact{Name: email, Email: email}
	}
	return Contact{Name: s, Homepage: s}
}

// Label is the text shown for the contact.
func (c Contact) Label() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.Email != "":
		return c.Email
	default:
		return c.Homepage
	}
}

// Href is mailto:<email> when an address is known, the homepage otherwise.
func (c Contact) Href() string {
	if c.Email != "" {
		return "mailto:" + c.Email
	}
	return c.Homepage
}

func (c *Contact) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = contactFromString(node.Value)
		return nil
	}
	type plain Contact
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Contact(p)
	return nil
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = contactFromString(s)
		return nil
	}
	type plain Contact
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Contact(p)
	return nil
}

// Contacts accepts a single contact string as well as a list.
type Contacts []Contact

// Primary returns the first contact, or the zero value.
func (cs Contacts) Primary() Contact {
	if len(cs) == 0 {
		return Contact{}
	}
	return cs[0]
}

func (cs *Contacts) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var one Contact
		if err := node.Decode(&one); err != nil {
			return err
		}
		*cs = Contacts{one}
		return nil
	}
	var list []Contact
	if err := node.Decode(&list); err != nil {
		return err
	}
	*cs = list
	return nil
}

func (cs *Contacts) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var one Contact
	if len(data) > 0 && data[0] != '[' {
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*cs = Contacts{one}
		return nil
	}
	var list []Contact
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*cs = list
	return nil
}

// Session is one block of the program.
type Session struct {
	Order      int      `yaml:"order" json:"order"`
	Title      string   `yaml:"title" json:"title"`
	Presenter  string   `yaml:"presenter" json:"presenter"`
	Duration   string   `yaml:"duration" json:"duration"`
	Topics     []string `yaml:"topics" json:"topics"`
	BreakAfter string   `yaml:"break_after,omitempty" json:"break_after,omitempty"`
	Slides     string   `yaml:"slides,omitempty" json:"slides,omitempty"`
	Start      string   `yaml:"start,omitempty" json:"start,omitempty"`
	End        string   `yaml:"end,omitempty" json:"end,omitempty"`
}

// HasSlides reports whether the session links to published slides.
func (s Session) HasSlides() bool { return published(s.Slides) }

// Program is program.yaml. Order fields are authoritative for display.
type Program struct {
	Sessions []Session `yaml:"sessions" json:"sessions"`
}

// Speaker is one presenter.
type Speaker struct {
	Name        string   `yaml:"name" json:"name"`
	Affiliation string   `yaml:"affiliation" json:"affiliation"`
	Email       string   `yaml:"email" json:"email"`
	Bio         string   `yaml:"bio" json:"bio"`
	Sessions    []string `yaml:"sessions" json:"sessions"`
}

// Speakers is speakers.yaml.
type Speakers struct {
	Speakers []Speaker `yaml:"speakers" json:"speakers"`
}

// Material is a slide deck, video, notebook or other resource.
type Material struct {
	Title       string `yaml:"title" json:"title"`
	File        string `yaml:"file,omitempty" json:"file,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	Platform    string `yaml:"platform,omitempty" json:"platform,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// IsPlaceholder reports whether s is the TBD placeholder, ignoring case and
// surrounding space.
func IsPlaceholder(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), Placeholder)
}

// Published reports whether s holds a real value: neither blank nor the
// placeholder.
func Published(s string) bool {
	return strings.TrimSpace(s) != "" && !IsPlaceholder(s)
}

func published(s string) bool { return Published(s) }

// HasFile reports whether a downloadable file has been published.
func (m Material) HasFile() bool { return published(m.File) }

// HasURL reports whether an external link has been published.
func (m Material) HasURL() bool { return published(m.URL) }

// Target is the file when present, otherwise the url, otherwise "".
func (m Material) Target() string {
	if m.HasFile() {
		return m.File
	}
	if m.HasURL() {
		return m.URL
	}
	return ""
}

// Materials is materials.yaml.
type Materials struct {
	Slides         []Material `yaml:"slides" json:"slides"`
	Videos         []Material `yaml:"videos" json:"videos"`
	Code           []Material `yaml:"code" json:"code"`
	OtherResources []Material `yaml:"other_resources" json:"other_resources"`
}

// ReadingItem is one paper or resource on the reading list.
type ReadingItem struct {
	Title       string `yaml:"title" json:"title"`
	Authors     string `yaml:"authors" json:"authors"`
	Year        int    `yaml:"year,omitempty" json:"year,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Description string `yaml:"description" json:"description"`
	Bibtex      string `yaml:"bibtex,omitempty" json:"bibtex,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
}

// Reading is reading.yaml.
type Reading struct {
	Essential []ReadingItem `yaml:"essential" json:"essential"`
	Advanced  []ReadingItem `yaml:"advanced" json:"advanced"`
	Reference []ReadingItem `yaml:"reference" json:"reference"`
}

// All returns every item, essential first.
func (r Reading) All() []ReadingItem {
	all := make([]ReadingItem, 0, len(r.Essential)+len(r.Advanced)+len(r.Reference))
	all = append(all, r.Essential...)
	all = append(all, r.Advanced...)
	return append(all, r.Reference...)
}

// Bundle holds all five documents of a site.
type Bundle struct {
	Tutorial  Tutorial
	Program   Program
	Speakers  Speakers
	Materials Materials
	Reading   Reading
}
