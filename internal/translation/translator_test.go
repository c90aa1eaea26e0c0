package translation

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (g *stubGenerator) Generate(ctx context.Context, instructions, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, g.err
}

func (g *stubGenerator) Close() error { return nil }

func sampleContext() *domain.DisplayContext {
	bio := "Experienced engineer"
	return &domain.DisplayContext{
		Candidate: domain.Candidate{ID: 1, FirstName: "Jane", LastName: "Doe"},
		Bio:       &bio,
		Skills:    []domain.SkillBadge{{SkillName: "Python", Class: "bg-primary"}},
		Projects: []domain.ProjectSummary{
			{ProjectName: "Search service", ProjectDescription: "Full-text search"},
		},
		Labels: domain.UILabels{
			BioTitle:    "Bio",
			SkillsTitle: "Skills",
		},
	}
}

func TestTranslateContext(t *testing.T) {
	ctx := context.Background()

	t.Run("Should merge translated keys over the original", func(t *testing.T) {
		gen := &stubGenerator{response: "```json\n" + `{
			"bio_title": "Biografia",
			"skills_title": "Habilidades",
			"bio": "Engenheira experiente"
		}` + "\n```"}
		tr := NewTranslator(gen, Options{})

		out, err := tr.TranslateContext(ctx, "Portuguese", sampleContext())
		require.NoError(t, err)
		assert.Equal(t, "Biografia", out.Labels.BioTitle)
		assert.Equal(t, "Habilidades", out.Labels.SkillsTitle)
		assert.Equal(t, "Engenheira experiente", *out.Bio)
		// Untranslated fields stay put.
		assert.Equal(t, "Jane", out.Candidate.FirstName)
		assert.Equal(t, "Python", out.Skills[0].SkillName)
	})

	t.Run("Should include the target language in the prompt", func(t *testing.T) {
		gen := &stubGenerator{response: `{}`}
		tr := NewTranslator(gen, Options{})

		_, err := tr.TranslateContext(ctx, "Cornish", sampleContext())
		require.NoError(t, err)
		assert.True(t, strings.Contains(gen.prompt, "Translate the following JSON to Cornish"))
		assert.True(t, strings.Contains(gen.prompt, `"skills_title"`))
	})

	t.Run("Should wrap generator failures", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("quota exceeded")}
		tr := NewTranslator(gen, Options{})

		_, err := tr.TranslateContext(ctx, "Manx", sampleContext())
		assert.ErrorIs(t, err, ErrServiceFailure)
	})

	t.Run("Should report unparseable responses", func(t *testing.T) {
		gen := &stubGenerator{response: "no json here"}
		tr := NewTranslator(gen, Options{})

		_, err := tr.TranslateContext(ctx, "Manx", sampleContext())
		assert.ErrorIs(t, err, ErrBadResponse)
	})

	t.Run("Should never modify the input context", func(t *testing.T) {
		gen := &stubGenerator{response: `{"bio_title": "Autre"}`}
		tr := NewTranslator(gen, Options{})

		in := sampleContext()
		out, err := tr.TranslateContext(ctx, "French", in)
		require.NoError(t, err)
		assert.Equal(t, "Bio", in.Labels.BioTitle)
		assert.Equal(t, "Autre", out.Labels.BioTitle)
	})
}

func TestContentFromContext(t *testing.T) {
	t.Run("Should fall back to English defaults for empty labels", func(t *testing.T) {
		dc := &domain.DisplayContext{}
		content := ContentFromContext(dc)
		assert.Equal(t, "No bio information available.", content.NoBioMessage)
		assert.Equal(t, "Skills", content.SkillsTitle)
		assert.Nil(t, content.Bio)
	})
}

func TestMergeIntoContext(t *testing.T) {
	t.Run("Should ignore a projects list of the wrong length", func(t *testing.T) {
		dc := sampleContext()
		parsed, err := ExtractCleanJSON(`{"projects": []}`)
		require.NoError(t, err)

		merged := MergeIntoContext(dc, parsed)
		assert.Len(t, merged.Projects, 1)
		assert.Equal(t, "Search service", merged.Projects[0].ProjectName)
	})

	t.Run("Should leave keys absent from the response unchanged", func(t *testing.T) {
		dc := sampleContext()
		parsed, err := ExtractCleanJSON(`{"skills_title": "Sgiliau"}`)
		require.NoError(t, err)

		merged := MergeIntoContext(dc, parsed)
		assert.Equal(t, "Sgiliau", merged.Labels.SkillsTitle)
		assert.Equal(t, "Bio", merged.Labels.BioTitle)
	})
}
