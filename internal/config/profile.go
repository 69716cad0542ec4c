package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ErrMalformedEmail is returned when the obfuscated email does not decode
// to an address.
var ErrMalformedEmail = errors.New("malformed encoded email")

type Social struct {
	ID    string
	Label string
	URL   string
}

type Project struct {
	ID       int
	Title    string
	Category string
	Image    string
}

// Contact holds the vCard fields. Email is base64 obfuscated, not secret.
type Contact struct {
	Phone    string
	Email    string
	Website  string
	Location string
}

// DecodeEmail reverses the email obfuscation.
func (c Contact) DecodeEmail() (string, error) {
	raw, err := base64.StdEncoding.DecodeString(c.Email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEmail, err)
	}
	addr, err := mail.ParseAddress(string(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEmail, err)
	}
	return addr.Address, nil
}

type Profile struct {
	Name     string
	Role     string
	Company  string
	Contact  Contact
	Socials  []Social
	Skills   []string
	Projects []Project
}

// Initial returns the first letter of the name, used by the avatar fallback.
func (p Profile) Initial() string {
	for _, r := range p.Name {
		return string(r)
	}
	return "?"
}

// SkillLines joins the skills with " / " and wraps them into lines of at
// most width runes. A skill longer than width gets a line of its own.
func (p Profile) SkillLines(width int) []string {
	var lines []string
	cur := ""
	for _, s := range p.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		switch {
		case cur == "":
			cur = s
		case utf8.RuneCountInString(cur)+3+utf8.RuneCountInString(s) <= width:
			cur += " / " + s
		default:
			lines = append(lines, cur)
			cur = s
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// ProjectTitles lists the project titles on one line.
func (p Profile) ProjectTitles() string {
	titles := make([]string, 0, len(p.Projects))
	for _, pr := range p.Projects {
		titles = append(titles, pr.Title)
	}
	return strings.Join(titles, " / ")
}

// DefaultProfile is the card content.
var DefaultProfile = Profile{
	Name:    "Alex Design",
	Role:    "Fullstack Architect",
	Company: "VNC Studio",
	Contact: Contact{
		Phone:    "+123456789",
		Email:    "aGVsbG9Adm5jLmRlc2lnbg==", // hello@vnc.design
		Website:  "https://vnc.design",
		Location: "San Francisco, CA",
	},
	Socials: []Social{
		{ID: "github", Label: "GitHub", URL: "https://github.com"},
		{ID: "linkedin", Label: "LinkedIn", URL: "https://linkedin.com"},
		{ID: "twitter", Label: "Twitter", URL: "https://twitter.com"},
	},
	Skills: []string{"React", "Next.js", "TypeScript", "WebGL", "Node.js", "Design Systems"},
	Projects: []Project{
		{ID: 1, Title: "Neon Dreams", Category: "Design System", Image: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b"},
		{ID: 2, Title: "Flux Engine", Category: "WebGL Core", Image: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe"},
		{ID: 3, Title: "Zenith AI", Category: "Interface", Image: "https://images.unsplash.com/photo-1620641788421-7a1c342ea42e"},
	},
}
