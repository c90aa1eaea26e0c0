package usecase

import (
	"context"
	"strings"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"
	"go-cv-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactTypeUsecase struct {
	repo     domain.ContactTypeRepository
	validate *validator.Validate
}

func NewContactTypeUsecase(repo domain.ContactTypeRepository, validate *validator.Validate) domain.ContactTypeUsecase {
	return &contactTypeUsecase{repo: repo, validate: validate}
}

func (u *contactTypeUsecase) List(ctx context.Context) ([]domain.ContactType, error) {
	return u.repo.List(ctx)
}

func (u *contactTypeUsecase) Get(ctx context.Context, id int64) (*domain.ContactType, error) {
	ct, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, apperror.NotFound("Contact type not found")
	}
	return ct, nil
}

func (u *contactTypeUsecase) Create(ctx context.Context, ct *domain.ContactType) error {
	if err := u.validate.Struct(ct); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Create(ctx, ct); err != nil {
		if err == domain.ErrDuplicate {
			return apperror.Conflict("Contact type already exists")
		}
		return err
	}
	return nil
}

func (u *contactTypeUsecase) Update(ctx context.Context, ct *domain.ContactType) error {
	if err := u.validate.Struct(ct); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.repo.Update(ctx, ct); err != nil {
		switch err {
		case domain.ErrNotFound:
			return apperror.NotFound("Contact type not found")
		case domain.ErrDuplicate:
			return apperror.Conflict("Contact type already exists")
		}
		return err
	}
	return nil
}

func (u *contactTypeUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Contact type not found")
		}
		return err
	}
	return nil
}

type contactUsecase struct {
	repo          domain.ContactRepository
	typeRepo      domain.ContactTypeRepository
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewContactUsecase(
	repo domain.ContactRepository,
	typeRepo domain.ContactTypeRepository,
	candidateRepo domain.CandidateRepository,
	validate *validator.Validate,
) domain.ContactUsecase {
	return &contactUsecase{
		repo:          repo,
		typeRepo:      typeRepo,
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

func (u *contactUsecase) List(ctx context.Context) ([]domain.Contact, error) {
	return u.repo.List(ctx)
}

func (u *contactUsecase) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	contact, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NotFound("Contact not found")
	}
	return contact, nil
}

func (u *contactUsecase) Create(ctx context.Context, contact *domain.Contact) error {
	if err := u.checkContact(ctx, contact); err != nil {
		return err
	}
	if err := u.repo.Create(ctx, contact); err != nil {
		if err == domain.ErrDuplicate {
			return apperror.Conflict("Contact value already exists")
		}
		return err
	}
	return nil
}

func (u *contactUsecase) Update(ctx context.Context, contact *domain.Contact) error {
	if err := u.checkContact(ctx, contact); err != nil {
		return err
	}
	if err := u.repo.Update(ctx, contact); err != nil {
		switch err {
		case domain.ErrNotFound:
			return apperror.NotFound("Contact not found")
		case domain.ErrDuplicate:
			return apperror.Conflict("Contact value already exists")
		}
		return err
	}
	return nil
}

func (u *contactUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Contact not found")
		}
		return err
	}
	return nil
}

// checkContact validates the struct, resolves both referenced rows and then
// applies the format rule that matches the contact type. Unknown contact
// types carry no format rule, so their values pass as-is.
func (u *contactUsecase) checkContact(ctx context.Context, contact *domain.Contact) error {
	if err := u.validate.Struct(contact); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	candidate, err := u.candidateRepo.GetByID(ctx, contact.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found")
	}

	ct, err := u.typeRepo.GetByID(ctx, contact.ContactTypeID)
	if err != nil {
		return err
	}
	if ct == nil {
		return apperror.NotFound("Contact type not found")
	}

	if tag, ok := validation.ContactTag(ct.ContactType); ok {
		if err := u.validate.Var(contact.Contact, tag); err != nil {
			return apperror.Unprocessable("Contact value is not a valid " + strings.ToLower(ct.ContactType))
		}
	}
	return nil
}
