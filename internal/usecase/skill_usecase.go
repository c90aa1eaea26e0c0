package usecase

import (
	"context"
	"strings"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"
	"go-cv-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	repo     domain.SkillRepository
	validate *validator.Validate
}

func NewSkillUsecase(repo domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{repo: repo, validate: validate}
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	return u.repo.List(ctx)
}

func (u *skillUsecase) Get(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperror.NotFound("Skill not found")
	}
	return skill, nil
}

func (u *skillUsecase) Create(ctx context.Context, skill *domain.Skill) error {
	if err := u.validate.Struct(skill); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Create(ctx, skill); err != nil {
		if err == domain.ErrDuplicate {
			return apperror.Conflict("Skill name already exists")
		}
		return err
	}
	return nil
}

func (u *skillUsecase) Update(ctx context.Context, skill *domain.Skill) error {
	if err := u.validate.Struct(skill); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Update(ctx, skill); err != nil {
		switch err {
		case domain.ErrNotFound:
			return apperror.NotFound("Skill not found")
		case domain.ErrDuplicate:
			return apperror.Conflict("Skill name already exists")
		}
		return err
	}
	return nil
}

func (u *skillUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Skill not found")
		}
		return err
	}
	return nil
}

type candidateSkillUsecase struct {
	repo          domain.CandidateSkillRepository
	candidateRepo domain.CandidateRepository
	skillRepo     domain.SkillRepository
	validate      *validator.Validate
}

func NewCandidateSkillUsecase(
	repo domain.CandidateSkillRepository,
	candidateRepo domain.CandidateRepository,
	skillRepo domain.SkillRepository,
	validate *validator.Validate,
) domain.CandidateSkillUsecase {
	return &candidateSkillUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
		skillRepo:     skillRepo,
		validate:      validate,
	}
}

func (u *candidateSkillUsecase) List(ctx context.Context) ([]domain.CandidateSkill, error) {
	return u.repo.List(ctx)
}

func (u *candidateSkillUsecase) Get(ctx context.Context, id int64) (*domain.CandidateSkill, error) {
	link, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperror.NotFound("Candidate skill not found")
	}
	return link, nil
}

func (u *candidateSkillUsecase) Create(ctx context.Context, link *domain.CandidateSkill) error {
	if err := u.validate.Struct(link); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	candidate, err := u.candidateRepo.GetByID(ctx, link.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found")
	}

	skill, err := u.skillRepo.GetByID(ctx, link.SkillID)
	if err != nil {
		return err
	}
	if skill == nil {
		return apperror.NotFound("Skill not found")
	}

	if err := u.repo.Create(ctx, link); err != nil {
		if err == domain.ErrDuplicate {
			return apperror.Conflict("Candidate already has this skill")
		}
		return err
	}
	return nil
}

// Delete removes the association and cleans up the skill itself when this
// was the last reference to it. Both happen in one transaction.
func (u *candidateSkillUsecase) Delete(ctx context.Context, id int64) (bool, error) {
	skillDeleted, err := u.repo.DeleteWithOrphanCheck(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return false, apperror.NotFound("Candidate skill not found")
		}
		return false, err
	}
	return skillDeleted, nil
}
