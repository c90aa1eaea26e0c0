package pdf

import "html/template"

// cvTemplate is the printable CV page. It must contain everything the PDF
// shows; the renderer does no data fetching of its own.
const cvTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Labels.TabTitle}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 40px; }
        h1 { margin-bottom: 4px; }
        h2 { border-bottom: 1px solid #ccc; padding-bottom: 4px; margin-top: 28px; }
        .badge { display: inline-block; padding: 4px 10px; margin: 2px; border-radius: 10px; color: #fff; font-size: 13px; }
        .bg-primary { background: #0d6efd; }
        .bg-success { background: #198754; }
        .bg-danger { background: #dc3545; }
        .bg-warning { background: #ffc107; color: #333; }
        .bg-info { background: #0dcaf0; color: #333; }
        .bg-dark { background: #212529; }
        .project { margin-bottom: 12px; }
        .project-name { font-weight: bold; }
        .contact-type { font-weight: bold; }
        .muted { color: #888; font-style: italic; }
    </style>
</head>
<body>
    <h1>{{.Candidate.FirstName}} {{.Candidate.LastName}}</h1>

    <h2>{{.Labels.BioTitle}}</h2>
    {{if .Bio}}<p>{{.Bio}}</p>{{else}}<p class="muted">{{.Labels.NoBioMessage}}</p>{{end}}

    <h2>{{.Labels.SkillsTitle}}</h2>
    {{if .Skills}}
    <p>{{range .Skills}}<span class="badge {{.Class}}">{{.SkillName}}</span>{{end}}</p>
    {{else}}<p class="muted">{{.Labels.NoSkillsMessage}}</p>{{end}}

    <h2>{{.Labels.ProjectsTitle}}</h2>
    {{if .Projects}}
    {{range .Projects}}
    <div class="project">
        <div class="project-name">{{.ProjectName}}</div>
        <div>{{.ProjectDescription}}</div>
    </div>
    {{end}}
    {{else}}<p class="muted">{{.Labels.NoProjectsMessage}}</p>{{end}}

    <h2>{{.Labels.ContactsTitle}}</h2>
    {{if .Contacts}}
    <ul>
    {{range .Contacts}}<li><span class="contact-type">{{.ContactType}}:</span> {{.Contact}}</li>{{end}}
    </ul>
    {{else}}<p class="muted">{{.Labels.NoContactsMessage}}</p>{{end}}
</body>
</html>`

var cvTmpl = template.Must(template.New("cv").Parse(cvTemplate))
