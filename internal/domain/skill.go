package domain

import "context"

type Skill struct {
	ID        int64  `json:"id"`
	SkillName string `json:"skill_name" validate:"required,max=100"`
}

// CandidateSkill is a many-to-many join row between a candidate and a skill.
type CandidateSkill struct {
	ID          int64 `json:"id"`
	CandidateID int64 `json:"candidate_id" validate:"required"`
	SkillID     int64 `json:"skill_id" validate:"required"`
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type CandidateSkillRepository interface {
	List(ctx context.Context) ([]CandidateSkill, error)
	GetByID(ctx context.Context, id int64) (*CandidateSkill, error)
	Create(ctx context.Context, link *CandidateSkill) error
	// DeleteWithOrphanCheck removes the association and, inside the same
	// transaction, deletes the referenced skill when no other association
	// still points at it.
	DeleteWithOrphanCheck(ctx context.Context, id int64) (skillDeleted bool, err error)
}

type SkillUsecase interface {
	List(ctx context.Context) ([]Skill, error)
	Get(ctx context.Context, id int64) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type CandidateSkillUsecase interface {
	List(ctx context.Context) ([]CandidateSkill, error)
	Get(ctx context.Context, id int64) (*CandidateSkill, error)
	Create(ctx context.Context, link *CandidateSkill) error
	Delete(ctx context.Context, id int64) (skillDeleted bool, err error)
}
