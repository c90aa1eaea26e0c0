// Package translation implements the on-demand CV translation pipeline:
// whitelist serialization, the language-model call, JSON extraction from the
// loosely structured response, and the merge back into the display context.
package translation

import (
	"encoding/json"

	"go-cv-backend/internal/domain"
)

// CVContent is the fixed whitelist of translatable fields. Anything the model
// returns outside these keys is dropped on merge; candidate identity, skill
// names and contact values are never translated.
type CVContent struct {
	NoBioMessage        string           `json:"no_bio_message"`
	NoSkillsMessage     string           `json:"no_skills_message"`
	NoProjectsMessage   string           `json:"no_projects_message"`
	NoContactsMessage   string           `json:"no_contacts_message"`
	DownloadBtnTitle    string           `json:"download_btn_title"`
	EmailSubmitBtnTitle string           `json:"email_submit_btn_title"`
	TranslateBtnTitle   string           `json:"translate_btn_title"`
	SkillsTitle         string           `json:"skills_title"`
	ProjectsTitle       string           `json:"projects_title"`
	ContactsTitle       string           `json:"contacts_title"`
	BioTitle            string           `json:"bio_title"`
	Bio                 *string          `json:"bio"`
	Projects            []ProjectContent `json:"projects"`
}

type ProjectContent struct {
	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`
}

// fallback returns value unless it is empty, in which case the English
// default is used so the model always receives a sensible source string.
func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// ContentFromContext extracts the translatable whitelist from a display
// context, defaulting missing UI strings to their English fallbacks.
func ContentFromContext(dc *domain.DisplayContext) CVContent {
	content := CVContent{
		NoBioMessage:        fallback(dc.Labels.NoBioMessage, "No bio information available."),
		NoSkillsMessage:     fallback(dc.Labels.NoSkillsMessage, "No skills information available."),
		NoProjectsMessage:   fallback(dc.Labels.NoProjectsMessage, "No projects information available."),
		NoContactsMessage:   fallback(dc.Labels.NoContactsMessage, "No contacts information available."),
		DownloadBtnTitle:    fallback(dc.Labels.DownloadBtnTitle, "Download PDF"),
		EmailSubmitBtnTitle: fallback(dc.Labels.EmailSubmitBtnTitle, "Send PDF"),
		TranslateBtnTitle:   fallback(dc.Labels.TranslateBtnTitle, "Translate"),
		SkillsTitle:         fallback(dc.Labels.SkillsTitle, "Skills"),
		ProjectsTitle:       fallback(dc.Labels.ProjectsTitle, "Projects"),
		ContactsTitle:       fallback(dc.Labels.ContactsTitle, "Contacts"),
		BioTitle:            fallback(dc.Labels.BioTitle, "Bio"),
		Bio:                 dc.Bio,
		Projects:            []ProjectContent{},
	}
	for _, p := range dc.Projects {
		content.Projects = append(content.Projects, ProjectContent{
			ProjectName:        p.ProjectName,
			ProjectDescription: p.ProjectDescription,
		})
	}
	return content
}

// MergeIntoContext overlays translated keys onto a copy of the display
// context. Keys absent from the parsed response leave the original value
// unchanged.
func MergeIntoContext(dc *domain.DisplayContext, parsed map[string]json.RawMessage) *domain.DisplayContext {
	merged := *dc

	setString := func(key string, dst *string) {
		raw, ok := parsed[key]
		if !ok {
			return
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*dst = s
		}
	}

	setString("no_bio_message", &merged.Labels.NoBioMessage)
	setString("no_skills_message", &merged.Labels.NoSkillsMessage)
	setString("no_projects_message", &merged.Labels.NoProjectsMessage)
	setString("no_contacts_message", &merged.Labels.NoContactsMessage)
	setString("download_btn_title", &merged.Labels.DownloadBtnTitle)
	setString("email_submit_btn_title", &merged.Labels.EmailSubmitBtnTitle)
	setString("translate_btn_title", &merged.Labels.TranslateBtnTitle)
	setString("skills_title", &merged.Labels.SkillsTitle)
	setString("projects_title", &merged.Labels.ProjectsTitle)
	setString("contacts_title", &merged.Labels.ContactsTitle)
	setString("bio_title", &merged.Labels.BioTitle)

	if raw, ok := parsed["bio"]; ok {
		var bio *string
		if err := json.Unmarshal(raw, &bio); err == nil {
			merged.Bio = bio
		}
	}

	if raw, ok := parsed["projects"]; ok {
		var projects []ProjectContent
		if err := json.Unmarshal(raw, &projects); err == nil && len(projects) == len(merged.Projects) {
			out := make([]domain.ProjectSummary, len(projects))
			for i, p := range projects {
				out[i] = domain.ProjectSummary{
					ProjectName:        p.ProjectName,
					ProjectDescription: p.ProjectDescription,
				}
			}
			merged.Projects = out
		}
	}

	return &merged
}
