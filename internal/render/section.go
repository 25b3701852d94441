// Package render turns the slices of a content document into the HTML
// fragments that fill the page's mount points.
package render

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/landing/internal/content"
)

// Mount point ids of the page shell. Each one is owned by exactly one
// section.
const (
	MountLogo     = "logo"
	MountNavMenu  = "navMenu"
	MountHero     = "heroNoidung"
	MountSkills   = "skillsGrid"
	MountProjects = "projectsList"
	MountFooter   = "footerNoidung"
)

// ErrMissingSection is returned when the document lacks the slice a
// section renders.
var ErrMissingSection = errors.New("section data missing")

// SectionError ties a rendering failure to the section that produced it.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// Fragment is the complete new content of one mount point.
type Fragment struct {
	Mount string
	HTML  string
}

// Section renders one part of the page. Render must only return fragments
// for the mounts listed by Mounts.
type Section interface {
	Name() string
	Mounts() []string
	Render(doc *content.Document) ([]Fragment, error)
}

// Registry holds the sections in page order and guarantees that no two of
// them write the same mount point.
type Registry struct {
	sections []Section
	owners   map[string]string
}

// NewRegistry checks mount ownership and returns the registry.
func NewRegistry(sections ...Section) (*Registry, error) {
	r := &Registry{owners: make(map[string]string)}
	for _, s := range sections {
		for _, m := range s.Mounts() {
			if owner, ok := r.owners[m]; ok {
				return nil, fmt.Errorf("mount %q claimed by both %s and %s", m, owner, s.Name())
			}
			r.owners[m] = s.Name()
		}
		r.sections = append(r.sections, s)
	}
	return r, nil
}

// Sections returns the sections in render order.
func (r *Registry) Sections() []Section {
	return append([]Section(nil), r.sections...)
}

// Owner returns the name of the section owning mount, if any.
func (r *Registry) Owner(mount string) (string, bool) {
	name, ok := r.owners[mount]
	return name, ok
}

// Mounts returns every owned mount id in render order.
func (r *Registry) Mounts() []string {
	var out []string
	for _, s := range r.sections {
		out = append(out, s.Mounts()...)
	}
	return out
}

// RenderAll renders every section in order. It stops at the first failure
// and returns no fragments in that case.
func (r *Registry) RenderAll(doc *content.Document) ([]Fragment, error) {
	if doc == nil {
		return nil, &SectionError{Section: "document", Err: ErrMissingSection}
	}
	var out []Fragment
	for _, s := range r.sections {
		frags, err := s.Render(doc)
		if err != nil {
			return nil, err
		}
		for _, f := range frags {
			if owner := r.owners[f.Mount]; owner != s.Name() {
				return nil, &SectionError{Section: s.Name(), Err: fmt.Errorf("wrote mount %q it does not own", f.Mount)}
			}
		}
		out = append(out, frags...)
	}
	return out, nil
}
