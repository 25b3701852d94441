package content

// Document is the single payload that drives every section of the page.
// It is read-only once loaded.
type Document struct {
	Navigation *Navigation `json:"navigation" yaml:"navigation" validate:"required"`
	Hero       *Hero       `json:"hero" yaml:"hero" validate:"required"`
	Skills     []Skill     `json:"skills" yaml:"skills" validate:"required,dive"`
	Projects   []Project   `json:"projects" yaml:"projects" validate:"required,dive"`
	Footer     *Footer     `json:"footer" yaml:"footer" validate:"required"`
}

// Navigation holds the header logo and the menu entries in display order.
type Navigation struct {
	Logo    string     `json:"logo" yaml:"logo"`
	LogoAlt string     `json:"logoAlt" yaml:"logoAlt"`
	Menu    []MenuItem `json:"menu" yaml:"menu" validate:"dive"`
}

// MenuItem is a single navigation entry.
type MenuItem struct {
	Label string `json:"ten" yaml:"ten" validate:"required"`
	Link  string `json:"link" yaml:"link" validate:"required"`
}

// Hero is the introduction block at the top of the page.
type Hero struct {
	Avatar      string `json:"avatar" yaml:"avatar"`
	Name        string `json:"ten" yaml:"ten"`
	Title       string `json:"chucDanh" yaml:"chucDanh"`
	Description string `json:"moTa" yaml:"moTa"`
	CVLink      string `json:"cvLink" yaml:"cvLink"`
	CVText      string `json:"cvText" yaml:"cvText"`
	ContactText string `json:"contactText" yaml:"contactText"`
}

// Skill is rendered as one card in the skills grid.
type Skill struct {
	Icon        string `json:"icon" yaml:"icon"`
	Name        string `json:"ten" yaml:"ten"`
	Description string `json:"moTa" yaml:"moTa"`
}

// Project is one entry of the projects list. Demo and GitHub are optional.
type Project struct {
	Name        string `json:"ten" yaml:"ten"`
	Description string `json:"moTa" yaml:"moTa"`
	Demo        string `json:"demo,omitempty" yaml:"demo,omitempty"`
	GitHub      string `json:"github,omitempty" yaml:"github,omitempty"`
}

// HasLinks reports whether the project has at least one outbound link.
func (p Project) HasLinks() bool {
	return p.Demo != "" || p.GitHub != ""
}

// Footer is the closing block with social links.
type Footer struct {
	Title       string       `json:"tieuDe" yaml:"tieuDe"`
	Description string       `json:"moTa" yaml:"moTa"`
	Social      []SocialLink `json:"social" yaml:"social" validate:"dive"`
	Copyright   string       `json:"copyright" yaml:"copyright"`
}

// SocialLink is an icon link in the footer.
type SocialLink struct {
	Name string `json:"ten" yaml:"ten"`
	Link string `json:"link" yaml:"link" validate:"required"`
	Icon string `json:"icon" yaml:"icon"`
}
