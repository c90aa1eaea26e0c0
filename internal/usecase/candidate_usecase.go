package usecase

import (
	"context"
	"strings"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"
	"go-cv-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	bioRepo  domain.BioItemRepository
	summRepo domain.SummaryRepository
	validate *validator.Validate
}

func NewCandidateUsecase(
	repo domain.CandidateRepository,
	bioRepo domain.BioItemRepository,
	summRepo domain.SummaryRepository,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		bioRepo:  bioRepo,
		summRepo: summRepo,
		validate: validate,
	}
}

func (u *candidateUsecase) List(ctx context.Context) ([]domain.Candidate, error) {
	return u.repo.List(ctx)
}

func (u *candidateUsecase) Get(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) Create(ctx context.Context, candidate *domain.Candidate) error {
	if err := u.validate.Struct(candidate); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return u.repo.Create(ctx, candidate)
}

func (u *candidateUsecase) Update(ctx context.Context, candidate *domain.Candidate) error {
	if err := u.validate.Struct(candidate); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Update(ctx, candidate); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Candidate not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Candidate not found")
		}
		return err
	}
	return nil
}

// Summary joins the candidate with its bio, skills, projects and contacts
// into a single read view. Purely a read; no rows are touched.
func (u *candidateUsecase) Summary(ctx context.Context, id int64) (*domain.CandidateSummary, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return u.assemble(ctx, candidate)
}

func (u *candidateUsecase) Summaries(ctx context.Context) ([]domain.CandidateSummary, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.CandidateSummary, 0, len(candidates))
	for i := range candidates {
		s, err := u.assemble(ctx, &candidates[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *s)
	}
	return summaries, nil
}

func (u *candidateUsecase) assemble(ctx context.Context, candidate *domain.Candidate) (*domain.CandidateSummary, error) {
	summary := &domain.CandidateSummary{
		ID:        candidate.ID,
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
		Skills:    []string{},
		Projects:  []domain.ProjectSummary{},
		Contacts:  []domain.ContactSummary{},
	}

	bio, err := u.bioRepo.GetByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	if bio != nil {
		summary.Bio = &bio.BioItem
	}

	skills, err := u.summRepo.SkillNamesByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	if skills != nil {
		summary.Skills = skills
	}

	projects, err := u.summRepo.ProjectsByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	if projects != nil {
		summary.Projects = projects
	}

	contacts, err := u.summRepo.ContactsByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	if contacts != nil {
		summary.Contacts = contacts
	}

	return summary, nil
}
