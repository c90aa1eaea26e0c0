package domain

import "context"

type Project struct {
	ID                 int64  `json:"id"`
	ProjectName        string `json:"project_name" validate:"required,max=255"`
	ProjectDescription string `json:"project_description" validate:"required"`
}

// CandidateProject is a many-to-many join row between a candidate and a project.
type CandidateProject struct {
	ID          int64 `json:"id"`
	CandidateID int64 `json:"candidate_id" validate:"required"`
	ProjectID   int64 `json:"project_id" validate:"required"`
}

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type CandidateProjectRepository interface {
	List(ctx context.Context) ([]CandidateProject, error)
	GetByID(ctx context.Context, id int64) (*CandidateProject, error)
	Create(ctx context.Context, link *CandidateProject) error
	// DeleteWithOrphanCheck removes the association and, inside the same
	// transaction, deletes the referenced project when no other association
	// still points at it.
	DeleteWithOrphanCheck(ctx context.Context, id int64) (projectDeleted bool, err error)
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type CandidateProjectUsecase interface {
	List(ctx context.Context) ([]CandidateProject, error)
	Get(ctx context.Context, id int64) (*CandidateProject, error)
	Create(ctx context.Context, link *CandidateProject) error
	Delete(ctx context.Context, id int64) (projectDeleted bool, err error)
}
