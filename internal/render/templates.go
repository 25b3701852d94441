package render

// The markup and class names below are a contract with the page
// stylesheet.

const descTemplate = `{{define "desc"}}{{if .Block}}<div{{with .Class}} class="{{.}}"{{end}}>{{.HTML}}</div>{{else}}<p{{with .Class}} class="{{.}}"{{end}}>{{.HTML}}</p>{{end}}{{end}}`

const logoTemplate = `{{define "logo"}}
<a href="#hero">
    <img src="{{url .Logo}}" alt="{{.LogoAlt}}" class="logo-img">
</a>
{{end}}`

const menuTemplate = `{{define "menu"}}{{range .}}
<li><a href="{{url .Link}}">{{text .Label}}</a></li>
{{end}}{{end}}`

const heroTemplate = `{{define "hero"}}
<img src="{{url .Avatar}}" alt="{{.Name}}" class="hero-avatar">
<h1 class="hero-ten">{{text .Name}}</h1>
<p class="hero-chuc-danh">{{text .Title}}</p>
{{template "desc" (desc "hero-mo-ta" .Description)}}
<div class="hero-buttons">
    <a href="{{url .CVLink}}" class="btn btn-primary" download>
        📥 {{text .CVText}}
    </a>
    <a href="#footer" class="btn btn-secondary">
        ✉️ {{text .ContactText}}
    </a>
</div>
{{end}}`

const skillsTemplate = `{{define "skills"}}{{range .}}
<div class="skill-item">
    <div class="skill-icon">{{text .Icon}}</div>
    <h3 class="skill-ten">{{text .Name}}</h3>
    {{template "desc" (desc "skill-mo-ta" .Description)}}
</div>
{{end}}{{end}}`

const projectsTemplate = `{{define "projects"}}{{range .}}
<div class="project-item">
    <div class="project-noidung">
        <h3 class="project-ten">{{text .Name}}</h3>
        {{template "desc" (desc "project-mo-ta" .Description)}}
        <div class="project-links">
            {{if .Demo}}<a href="{{url .Demo}}" target="_blank" class="project-link">🔗 Demo</a>{{end}}
            {{if .GitHub}}<a href="{{url .GitHub}}" target="_blank" class="project-link">💻 GitHub</a>{{end}}
        </div>
    </div>
</div>
{{end}}{{end}}`

const footerTemplate = `{{define "footer"}}
<h3>{{text .Title}}</h3>
{{template "desc" (desc "" .Description)}}
<div class="social-links">
    {{range .Social}}
    <a href="{{url .Link}}" target="_blank" class="social-link" title="{{.Name}}">
        {{text .Icon}}
    </a>
    {{end}}
</div>
<p class="footer-copyright">{{text .Copyright}}</p>
{{end}}`
