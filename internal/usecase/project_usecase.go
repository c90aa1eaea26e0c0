package usecase

import (
	"context"
	"strings"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"
	"go-cv-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	repo     domain.ProjectRepository
	validate *validator.Validate
}

func NewProjectUsecase(repo domain.ProjectRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{repo: repo, validate: validate}
}

func (u *projectUsecase) List(ctx context.Context) ([]domain.Project, error) {
	return u.repo.List(ctx)
}

func (u *projectUsecase) Get(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("Project not found")
	}
	return project, nil
}

func (u *projectUsecase) Create(ctx context.Context, project *domain.Project) error {
	if err := u.validate.Struct(project); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Create(ctx, project); err != nil {
		if err == domain.ErrDuplicate {
			return apperror.Conflict("Project name already exists")
		}
		return err
	}
	return nil
}

func (u *projectUsecase) Update(ctx context.Context, project *domain.Project) error {
	if err := u.validate.Struct(project); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Update(ctx, project); err != nil {
		switch err {
		case domain.ErrNotFound:
			return apperror.NotFound("Project not found")
		case domain.ErrDuplicate:
			return apperror.Conflict("Project name already exists")
		}
		return err
	}
	return nil
}

func (u *projectUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Project not found")
		}
		return err
	}
	return nil
}

type candidateProjectUsecase struct {
	repo          domain.CandidateProjectRepository
	candidateRepo domain.CandidateRepository
	projectRepo   domain.ProjectRepository
	validate      *validator.Validate
}

func NewCandidateProjectUsecase(
	repo domain.CandidateProjectRepository,
	candidateRepo domain.CandidateRepository,
	projectRepo domain.ProjectRepository,
	validate *validator.Validate,
) domain.CandidateProjectUsecase {
	return &candidateProjectUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
		projectRepo:   projectRepo,
		validate:      validate,
	}
}

func (u *candidateProjectUsecase) List(ctx context.Context) ([]domain.CandidateProject, error) {
	return u.repo.List(ctx)
}

func (u *candidateProjectUsecase) Get(ctx context.Context, id int64) (*domain.CandidateProject, error) {
	link, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperror.NotFound("Candidate project not found")
	}
	return link, nil
}

func (u *candidateProjectUsecase) Create(ctx context.Context, link *domain.CandidateProject) error {
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

	project, err := u.projectRepo.GetByID(ctx, link.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return apperror.NotFound("Project not found")
	}

	if err := u.repo.Create(ctx, link); err != nil {
		if err == domain.ErrDuplicate {
			return apperror.Conflict("Candidate already has this project")
		}
		return err
	}
	return nil
}

func (u *candidateProjectUsecase) Delete(ctx context.Context, id int64) (bool, error) {
	projectDeleted, err := u.repo.DeleteWithOrphanCheck(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return false, apperror.NotFound("Candidate project not found")
		}
		return false, err
	}
	return projectDeleted, nil
}
