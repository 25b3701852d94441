package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

// Options controls how document text reaches the markup.
type Options struct {
	// EscapeHTML escapes text fields and filters URLs instead of inserting
	// them verbatim. Turn it on when the document is not under the page
	// owner's control.
	EscapeHTML bool
	// Markdown renders description fields as markdown.
	Markdown bool
}

// descView is the input of the "desc" template.
type descView struct {
	Class string
	HTML  any
	Block bool
}

// templateSet parses every section template with the text helpers bound to
// opts.
func templateSet(opts Options) (*template.Template, error) {
	var md goldmark.Markdown
	if opts.Markdown {
		md = newMarkdown(!opts.EscapeHTML)
	}

	text := func(s string) any {
		if opts.EscapeHTML {
			return s
		}
		return template.HTML(s)
	}

	funcs := template.FuncMap{
		"text": text,
		"url": func(s string) any {
			if opts.EscapeHTML {
				return s
			}
			return template.URL(s)
		},
		"desc": func(class, s string) (descView, error) {
			if md == nil {
				return descView{Class: class, HTML: text(s)}, nil
			}
			out, err := convertMarkdown(md, s)
			if err != nil {
				return descView{}, err
			}
			return descView{Class: class, HTML: template.HTML(out), Block: true}, nil
		},
	}

	t := template.New("sections").Funcs(funcs)
	for _, src := range []string{
		descTemplate,
		logoTemplate,
		menuTemplate,
		heroTemplate,
		skillsTemplate,
		projectsTemplate,
		footerTemplate,
	} {
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing section templates: %w", err)
		}
	}
	return t, nil
}

func execute(t *template.Template, name string, data any) (string, error) {
	var sb strings.Builder
	if err := t.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

// New returns a registry with the five page sections in page order:
// navigation, hero, skills, projects, footer.
func New(opts Options) (*Registry, error) {
	t, err := templateSet(opts)
	if err != nil {
		return nil, err
	}
	return NewRegistry(
		&Navigation{t: t},
		&HeroSection{t: t},
		&Skills{t: t},
		&Projects{t: t},
		&FooterSection{t: t},
	)
}
