package content

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Starter returns a small but complete document to start editing from.
func Starter(name, title string) *Document {
	return &Document{
		Navigation: &Navigation{
			Logo:    "images/logo.png",
			LogoAlt: name,
			Menu: []MenuItem{
				{Label: "Home", Link: "#hero"},
				{Label: "Skills", Link: "#skills"},
				{Label: "Projects", Link: "#projects"},
				{Label: "Contact", Link: "#footer"},
			},
		},
		Hero: &Hero{
			Avatar:      "images/avatar.jpg",
			Name:        name,
			Title:       title,
			Description: "A short introduction about what you do.",
			CVLink:      "files/cv.pdf",
			CVText:      "Download CV",
			ContactText: "Contact me",
		},
		Skills: []Skill{
			{Icon: "💡", Name: "Skill", Description: "What you are good at."},
		},
		Projects: []Project{
			{Name: "Project", Description: "What it does and why it matters."},
		},
		Footer: &Footer{
			Title:       "Get in touch",
			Description: "Where people can reach you.",
			Social:      []SocialLink{},
			Copyright:   fmt.Sprintf("© %d %s", time.Now().Year(), name),
		},
	}
}

// WriteJSON writes doc as indented JSON. An existing file is left alone
// unless overwrite is set.
func WriteJSON(path string, doc *Document, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
