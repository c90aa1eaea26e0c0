package domain

import "context"

// ContactType is a category label for contact values ("Email", "Phone", ...).
type ContactType struct {
	ID          int64  `json:"id"`
	ContactType string `json:"contact_type" validate:"required,max=50"`
}

// Contact is a unique contact value typed by ContactType and owned by one candidate.
type Contact struct {
	ID            int64  `json:"id"`
	Contact       string `json:"contact" validate:"required,max=255"`
	CandidateID   int64  `json:"candidate_id" validate:"required"`
	ContactTypeID int64  `json:"contact_type_id" validate:"required"`
}

type ContactTypeRepository interface {
	List(ctx context.Context) ([]ContactType, error)
	GetByID(ctx context.Context, id int64) (*ContactType, error)
	Create(ctx context.Context, ct *ContactType) error
	Update(ctx context.Context, ct *ContactType) error
	Delete(ctx context.Context, id int64) error
}

type ContactRepository interface {
	List(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id int64) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id int64) error
}

type ContactTypeUsecase interface {
	List(ctx context.Context) ([]ContactType, error)
	Get(ctx context.Context, id int64) (*ContactType, error)
	Create(ctx context.Context, ct *ContactType) error
	Update(ctx context.Context, ct *ContactType) error
	Delete(ctx context.Context, id int64) error
}

type ContactUsecase interface {
	List(ctx context.Context) ([]Contact, error)
	Get(ctx context.Context, id int64) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id int64) error
}
