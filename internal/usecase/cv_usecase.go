package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"go-cv-backend/internal/domain"
	"go-cv-backend/internal/pdf"
	"go-cv-backend/internal/queue"
	"go-cv-backend/pkg/apperror"
	"go-cv-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// ContextTranslator is the slice of the translation pipeline the CV usecase
// needs. Satisfied by *translation.Translator.
type ContextTranslator interface {
	TranslateContext(ctx context.Context, language string, dc *domain.DisplayContext) (*domain.DisplayContext, error)
}

// badgeClasses are the accent styles a skill badge is randomly drawn in.
var badgeClasses = []string{
	"bg-primary",
	"bg-success",
	"bg-danger",
	"bg-warning",
	"bg-info",
	"bg-dark",
}

type cvUsecase struct {
	candidates domain.CandidateUsecase
	translator ContextTranslator
	renderer   pdf.Renderer
	publisher  queue.Publisher
	validate   *validator.Validate
	languages  []string
}

func NewCVUsecase(
	candidates domain.CandidateUsecase,
	translator ContextTranslator,
	renderer pdf.Renderer,
	publisher queue.Publisher,
	validate *validator.Validate,
	languages []string,
) domain.CVUsecase {
	return &cvUsecase{
		candidates: candidates,
		translator: translator,
		renderer:   renderer,
		publisher:  publisher,
		validate:   validate,
		languages:  languages,
	}
}

// DisplayContext builds the CV view. When a translation is requested and the
// pipeline fails, the original-language view is returned with ErrorMessage
// set instead of failing the request.
func (u *cvUsecase) DisplayContext(ctx context.Context, candidateID int64, language string) (*domain.DisplayContext, error) {
	summary, err := u.candidates.Summary(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	dc := &domain.DisplayContext{
		Candidate: domain.Candidate{
			ID:        summary.ID,
			FirstName: summary.FirstName,
			LastName:  summary.LastName,
		},
		Bio:           summary.Bio,
		Skills:        badgeSkills(summary.Skills),
		Projects:      summary.Projects,
		Contacts:      summary.Contacts,
		Labels:        englishLabels(summary.FirstName, summary.LastName),
		LanguagesList: u.languages,
	}

	if language == "" {
		return dc, nil
	}
	if u.translator == nil {
		dc.ErrorMessage = "Failed to load CV details: translation service is not configured"
		return dc, nil
	}

	translated, err := u.translator.TranslateContext(ctx, language, dc)
	if err != nil {
		logger.Log.Error("CV translation degraded to original content",
			"candidate_id", candidateID, "language", language, "error", err)
		dc.ErrorMessage = fmt.Sprintf("Failed to load CV details: %v", err)
		return dc, nil
	}
	translated.LanguagesList = u.languages
	return translated, nil
}

func (u *cvUsecase) RenderPDF(ctx context.Context, candidateID int64, language string) ([]byte, string, error) {
	dc, err := u.DisplayContext(ctx, candidateID, language)
	if err != nil {
		return nil, "", err
	}
	data, err := u.renderer.Render(ctx, dc)
	if err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to render PDF: %w", err))
	}
	return data, pdf.Filename(dc.Candidate.FirstName, dc.Candidate.LastName), nil
}

// EmailPDF renders the CV synchronously and hands delivery to the task
// queue. The returned id identifies the queued task, not a sent email.
func (u *cvUsecase) EmailPDF(ctx context.Context, candidateID int64, language, recipient string) (string, error) {
	if err := u.validate.Var(recipient, "required,email"); err != nil {
		return "", apperror.BadRequest("A valid recipient email address is required")
	}

	dc, err := u.DisplayContext(ctx, candidateID, language)
	if err != nil {
		return "", err
	}
	data, err := u.renderer.Render(ctx, dc)
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("failed to render PDF: %w", err))
	}

	taskID, err := u.publisher.PublishEmailTask(ctx, queue.EmailCVTask{
		FirstName: dc.Candidate.FirstName,
		LastName:  dc.Candidate.LastName,
		Recipient: recipient,
		PDF:       data,
	})
	if err != nil {
		return "", apperror.ServiceUnavailable("Failed to queue the email for delivery", err)
	}
	return taskID, nil
}

func badgeSkills(names []string) []domain.SkillBadge {
	badges := make([]domain.SkillBadge, 0, len(names))
	for _, name := range names {
		badges = append(badges, domain.SkillBadge{
			SkillName: name,
			Class:     badgeClasses[rand.Intn(len(badgeClasses))],
		})
	}
	return badges
}

func englishLabels(firstName, lastName string) domain.UILabels {
	fullName := firstName + " " + lastName
	return domain.UILabels{
		TabTitle:            fullName + " CV",
		HomeBtnTitle:        "Home",
		DownloadBtnTitle:    "Download PDF",
		EmailSubmitBtnTitle: "Send PDF",
		TranslateBtnTitle:   "Translate",
		BioTitle:            "Bio",
		SkillsTitle:         "Skills",
		ProjectsTitle:       "Projects",
		ContactsTitle:       "Contacts",
		NoBioMessage:        "No bio information available.",
		NoSkillsMessage:     "No skills information available.",
		NoProjectsMessage:   "No projects information available.",
		NoContactsMessage:   "No contacts information available.",
	}
}
