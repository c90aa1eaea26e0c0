package domain

import "context"

// Candidate is the root aggregate of a CV entry.
type Candidate struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name" validate:"required,max=50,valid_name"`
	LastName  string `json:"last_name" validate:"required,max=50,valid_name"`
	// CreatedBy is nulled when the creating user is deleted.
	CreatedBy *int64 `json:"created_by,omitempty"`
}

// BioItem is a candidate's free-text biography. At most one per candidate.
type BioItem struct {
	ID          int64  `json:"id"`
	BioItem     string `json:"bio_item" validate:"required"`
	CandidateID int64  `json:"candidate_id" validate:"required"`
}

// CandidateSummary is the consolidated read view of a candidate.
type CandidateSummary struct {
	ID        int64            `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Bio       *string          `json:"bio"`
	Skills    []string         `json:"skills"`
	Projects  []ProjectSummary `json:"projects"`
	Contacts  []ContactSummary `json:"contacts"`
}

type ProjectSummary struct {
	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`
}

type ContactSummary struct {
	Contact     string `json:"contact"`
	ContactType string `json:"contact_type"`
}

type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id int64) error
}

type BioItemRepository interface {
	List(ctx context.Context) ([]BioItem, error)
	GetByID(ctx context.Context, id int64) (*BioItem, error)
	GetByCandidateID(ctx context.Context, candidateID int64) (*BioItem, error)
	Create(ctx context.Context, bio *BioItem) error
	Update(ctx context.Context, bio *BioItem) error
	Delete(ctx context.Context, id int64) error
}

type CandidateUsecase interface {
	List(ctx context.Context) ([]Candidate, error)
	Get(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id int64) error
	// Summary assembles the read-only candidate view. Fails with NotFound
	// when the candidate does not exist; no side effects.
	Summary(ctx context.Context, id int64) (*CandidateSummary, error)
	Summaries(ctx context.Context) ([]CandidateSummary, error)
}

type BioItemUsecase interface {
	List(ctx context.Context) ([]BioItem, error)
	Get(ctx context.Context, id int64) (*BioItem, error)
	Create(ctx context.Context, bio *BioItem) error
	Update(ctx context.Context, bio *BioItem) error
	Delete(ctx context.Context, id int64) error
}

// SummaryRepository exposes the per-candidate association reads the summary
// view is assembled from. Distinctness of skills and projects is guaranteed
// by the composite uniqueness constraints on the join tables.
type SummaryRepository interface {
	SkillNamesByCandidateID(ctx context.Context, candidateID int64) ([]string, error)
	ProjectsByCandidateID(ctx context.Context, candidateID int64) ([]ProjectSummary, error)
	ContactsByCandidateID(ctx context.Context, candidateID int64) ([]ContactSummary, error)
}
