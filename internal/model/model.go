// Package model contains the content document shapes shared across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"bytes"
	"encoding/json"
)

// Text is a string that also accepts JSON numbers, so "12+" and 12 both decode.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Document is the first element of the content array served at {BASE_API}/data.
// Every field is optional; sections render their own empty state when a field is absent.
type Document struct {
	NavLinks    []NavLink     `json:"navLinks,omitempty"`
	Hero        *Hero         `json:"hero,omitempty"`
	Stats       []Stat        `json:"stats,omitempty"`
	Abilities   []Ability     `json:"abilities,omitempty"`
	Projects    []Project     `json:"projects,omitempty"`
	Educations  []Education   `json:"educations,omitempty"`
	Feedbacks   []Feedback    `json:"feedbacks,omitempty"`
	Contacts    []Contact     `json:"contacts,omitempty"`
	Footer      []FooterGroup `json:"footer,omitempty"`
	SocialMedia []SocialMedia `json:"socialMedia,omitempty"`

	// Skipped lists document fields that were present but could not be decoded.
	Skipped []string `json:"-"`
}

// Empty reports whether no section received any data.
func (d Document) Empty() bool {
	return len(d.NavLinks) == 0 && d.Hero == nil && len(d.Stats) == 0 &&
		len(d.Abilities) == 0 && len(d.Projects) == 0 && len(d.Educations) == 0 &&
		len(d.Feedbacks) == 0 && len(d.Contacts) == 0 && len(d.Footer) == 0 &&
		len(d.SocialMedia) == 0
}

// NavLink is a navbar entry pointing at a section anchor (ID) or an absolute URL.
type NavLink struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Link is a labelled hyperlink.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// Hero is the introduction block at the top of the page.
type Hero struct {
	Greeting    string `json:"greeting,omitempty"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"` // markdown
	Image       string `json:"image,omitempty"`
	Buttons     []Link `json:"buttons,omitempty"`
}

// Stat is a single highlighted number such as years of experience.
type Stat struct {
	Value Text   `json:"value"`
	Label string `json:"label"`
}

// Ability groups skills under a heading.
type Ability struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"` // markdown
	Icon        string  `json:"icon,omitempty"`
	Skills      []Skill `json:"skills,omitempty"`
}

// Skill is a named skill with an optional icon.
type Skill struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"` // markdown
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Demo        string   `json:"demo,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// Education is a school or course entry.
type Education struct {
	School      string `json:"school"`
	Degree      string `json:"degree,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"` // markdown
	Logo        string `json:"logo,omitempty"`
}

// Feedback is a testimonial.
type Feedback struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Comment string `json:"comment"`
	Avatar  string `json:"avatar,omitempty"`
}

// Contact is a way to reach the portfolio owner.
type Contact struct {
	Title string `json:"title"`
	Value string `json:"value"`
	URL   string `json:"url,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// FooterGroup is a titled column of footer links.
type FooterGroup struct {
	Title string `json:"title"`
	Links []Link `json:"links,omitempty"`
}

// SocialMedia is a profile link rendered as an icon in the footer.
type SocialMedia struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}
