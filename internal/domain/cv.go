package domain

import "context"

// SkillBadge is a skill name paired with the badge class the CV page renders
// it with.
type SkillBadge struct {
	SkillName string `json:"skill_name"`
	Class     string `json:"class"`
}

// UILabels carries the fixed UI copy of the CV detail view. These strings are
// what the translation pipeline rewrites into the target language.
type UILabels struct {
	TabTitle            string `json:"tab_title"`
	HomeBtnTitle        string `json:"home_btn_title"`
	DownloadBtnTitle    string `json:"download_btn_title"`
	EmailSubmitBtnTitle string `json:"email_submit_btn_title"`
	TranslateBtnTitle   string `json:"translate_btn_title"`
	BioTitle            string `json:"bio_title"`
	SkillsTitle         string `json:"skills_title"`
	ProjectsTitle       string `json:"projects_title"`
	ContactsTitle       string `json:"contacts_title"`
	NoBioMessage        string `json:"no_bio_message"`
	NoSkillsMessage     string `json:"no_skills_message"`
	NoProjectsMessage   string `json:"no_projects_message"`
	NoContactsMessage   string `json:"no_contacts_message"`
}

// DisplayContext is the full set of strings and lists prepared for rendering
// a candidate's CV page or PDF, before or after translation.
type DisplayContext struct {
	Candidate     Candidate        `json:"candidate"`
	Bio           *string          `json:"bio"`
	Skills        []SkillBadge     `json:"skills"`
	Projects      []ProjectSummary `json:"projects"`
	Contacts      []ContactSummary `json:"contacts"`
	Labels        UILabels         `json:"labels"`
	LanguagesList []string         `json:"languages_list"`
	// ErrorMessage is set when translation degraded to original-language
	// content; the page still renders.
	ErrorMessage string `json:"error_message,omitempty"`
}

type CVUsecase interface {
	// DisplayContext assembles the CV view for a candidate, translating it
	// when language is non-empty. Translation failures degrade to the
	// original content with ErrorMessage set.
	DisplayContext(ctx context.Context, candidateID int64, language string) (*DisplayContext, error)
	// RenderPDF renders the (possibly translated) CV into PDF bytes plus a
	// suggested filename of the form First_Last_CV.pdf.
	RenderPDF(ctx context.Context, candidateID int64, language string) ([]byte, string, error)
	// EmailPDF renders the CV and enqueues an email delivery task. It
	// returns the task id; delivery itself happens out-of-band.
	EmailPDF(ctx context.Context, candidateID int64, language, recipient string) (string, error)
}
