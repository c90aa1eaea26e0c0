package usecase

import (
	"context"
	"strings"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"
	"go-cv-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type bioItemUsecase struct {
	repo          domain.BioItemRepository
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewBioItemUsecase(
	repo domain.BioItemRepository,
	candidateRepo domain.CandidateRepository,
	validate *validator.Validate,
) domain.BioItemUsecase {
	return &bioItemUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

func (u *bioItemUsecase) List(ctx context.Context) ([]domain.BioItem, error) {
	return u.repo.List(ctx)
}

func (u *bioItemUsecase) Get(ctx context.Context, id int64) (*domain.BioItem, error) {
	bio, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bio == nil {
		return nil, apperror.NotFound("Bio item not found")
	}
	return bio, nil
}

// Create enforces the one-bio-per-candidate rule here as well as via the
// unique constraint, so the common case gets a clean error without a
// round-trip through the constraint violation.
func (u *bioItemUsecase) Create(ctx context.Context, bio *domain.BioItem) error {
	if err := u.validate.Struct(bio); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	candidate, err := u.candidateRepo.GetByID(ctx, bio.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found")
	}

	existing, err := u.repo.GetByCandidateID(ctx, bio.CandidateID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.Conflict("Candidate already has a bio item")
	}

	if err := u.repo.Create(ctx, bio); err != nil {
		if err == domain.ErrDuplicate {
			return apperror.Conflict("Candidate already has a bio item")
		}
		return err
	}
	return nil
}

func (u *bioItemUsecase) Update(ctx context.Context, bio *domain.BioItem) error {
	if err := u.validate.Struct(bio); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Update(ctx, bio); err != nil {
		switch err {
		case domain.ErrNotFound:
			return apperror.NotFound("Bio item not found")
		case domain.ErrDuplicate:
			return apperror.Conflict("Candidate already has a bio item")
		}
		return err
	}
	return nil
}

func (u *bioItemUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Bio item not found")
		}
		return err
	}
	return nil
}
