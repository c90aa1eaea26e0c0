package pdf

import (
	"strings"
	"testing"

	"go-cv-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	bio := "Experienced engineer"
	dc := &domain.DisplayContext{
		Candidate: domain.Candidate{ID: 1, FirstName: "Jane", LastName: "Doe"},
		Bio:       &bio,
		Skills: []domain.SkillBadge{
			{SkillName: "Python", Class: "bg-primary"},
			{SkillName: "Go", Class: "bg-dark"},
		},
		Projects: []domain.ProjectSummary{
			{ProjectName: "Search service", ProjectDescription: "Full-text search"},
		},
		Contacts: []domain.ContactSummary{
			{Contact: "jane@example.com", ContactType: "Email"},
		},
		Labels: domain.UILabels{
			TabTitle:          "Jane Doe",
			BioTitle:          "Bio",
			SkillsTitle:       "Skills",
			ProjectsTitle:     "Projects",
			ContactsTitle:     "Contacts",
			NoBioMessage:      "No bio information available.",
			NoSkillsMessage:   "No skills information available.",
			NoProjectsMessage: "No projects information available.",
			NoContactsMessage: "No contacts information available.",
		},
	}

	html, err := RenderHTML(dc)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Jane Doe</title>")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "Experienced engineer")
	assert.Contains(t, html, `class="badge bg-primary"`)
	assert.Contains(t, html, "Python")
	assert.Contains(t, html, "Search service")
	assert.Contains(t, html, "jane@example.com")
	assert.NotContains(t, html, "No bio information available.")
}

func TestRenderHTMLEmptySections(t *testing.T) {
	dc := &domain.DisplayContext{
		Candidate: domain.Candidate{ID: 2, FirstName: "John", LastName: "Smith"},
		Labels: domain.UILabels{
			NoBioMessage:      "No bio information available.",
			NoSkillsMessage:   "No skills information available.",
			NoProjectsMessage: "No projects information available.",
			NoContactsMessage: "No contacts information available.",
		},
	}

	html, err := RenderHTML(dc)
	require.NoError(t, err)

	assert.Contains(t, html, "No bio information available.")
	assert.Contains(t, html, "No skills information available.")
	assert.Contains(t, html, "No projects information available.")
	assert.Contains(t, html, "No contacts information available.")
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	bio := `<script>alert("x")</script>`
	dc := &domain.DisplayContext{
		Candidate: domain.Candidate{FirstName: "Jane", LastName: "Doe"},
		Bio:       &bio,
	}

	html, err := RenderHTML(dc)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Jane_Doe_CV.pdf", Filename("Jane", "Doe"))
	assert.Equal(t, "John_Smith_CV.pdf", Filename("John", "Smith"))
}
