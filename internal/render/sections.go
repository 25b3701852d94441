package render

import (
	"html/template"

	"github.com/ziadkadry99/landing/internal/content"
)

// Navigation renders the header logo and the menu entries.
type Navigation struct{ t *template.Template }

func (s *Navigation) Name() string     { return "navigation" }
func (s *Navigation) Mounts() []string { return []string{MountLogo, MountNavMenu} }

func (s *Navigation) Render(doc *content.Document) ([]Fragment, error) {
	if doc.Navigation == nil {
		return nil, &SectionError{Section: s.Name(), Err: ErrMissingSection}
	}
	logo, err := execute(s.t, "logo", doc.Navigation)
	if err != nil {
		return nil, &SectionError{Section: s.Name(), Err: err}
	}
	menu, err := execute(s.t, "menu", doc.Navigation.Menu)
	if err != nil {
		return nil, &SectionError{Section: s.Name(), Err: err}
	}
	return []Fragment{
		{Mount: MountLogo, HTML: logo},
		{Mount: MountNavMenu, HTML: menu},
	}, nil
}

// HeroSection renders the introduction block.
type HeroSection struct{ t *template.Template }

func (s *HeroSection) Name() string     { return "hero" }
func (s *HeroSection) Mounts() []string { return []string{MountHero} }

func (s *HeroSection) Render(doc *content.Document) ([]Fragment, error) {
	if doc.Hero == nil {
		return nil, &SectionError{Section: s.Name(), Err: ErrMissingSection}
	}
	return single(s.t, s.Name(), "hero", MountHero, doc.Hero)
}

// Skills renders one card per skill.
type Skills struct{ t *template.Template }

func (s *Skills) Name() string     { return "skills" }
func (s *Skills) Mounts() []string { return []string{MountSkills} }

func (s *Skills) Render(doc *content.Document) ([]Fragment, error) {
	if doc.Skills == nil {
		return nil, &SectionError{Section: s.Name(), Err: ErrMissingSection}
	}
	return single(s.t, s.Name(), "skills", MountSkills, doc.Skills)
}

// Projects renders one entry per project. Demo and GitHub links are left
// out when empty.
type Projects struct{ t *template.Template }

func (s *Projects) Name() string     { return "projects" }
func (s *Projects) Mounts() []string { return []string{MountProjects} }

func (s *Projects) Render(doc *content.Document) ([]Fragment, error) {
	if doc.Projects == nil {
		return nil, &SectionError{Section: s.Name(), Err: ErrMissingSection}
	}
	return single(s.t, s.Name(), "projects", MountProjects, doc.Projects)
}

// FooterSection renders the closing block and its social links.
type FooterSection struct{ t *template.Template }

func (s *FooterSection) Name() string     { return "footer" }
func (s *FooterSection) Mounts() []string { return []string{MountFooter} }

func (s *FooterSection) Render(doc *content.Document) ([]Fragment, error) {
	if doc.Footer == nil {
		return nil, &SectionError{Section: s.Name(), Err: ErrMissingSection}
	}
	return single(s.t, s.Name(), "footer", MountFooter, doc.Footer)
}

func single(t *template.Template, section, name, mount string, data any) ([]Fragment, error) {
	out, err := execute(t, name, data)
	if err != nil {
		return nil, &SectionError{Section: section, Err: err}
	}
	return []Fragment{{Mount: mount, HTML: out}}, nil
}
