package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-cv-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepository struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, skill_name FROM skills ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.SkillName); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepository) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRow(ctx, `SELECT id, skill_name FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.SkillName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO skills (skill_name) VALUES ($1) RETURNING id`, skill.SkillName).
		Scan(&skill.ID))
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE skills SET skill_name = $1 WHERE id = $2`, skill.SkillName, skill.ID)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type candidateSkillRepository struct {
	db *pgxpool.Pool
}

func NewCandidateSkillRepository(db *pgxpool.Pool) domain.CandidateSkillRepository {
	return &candidateSkillRepository{db: db}
}

func (r *candidateSkillRepository) List(ctx context.Context) ([]domain.CandidateSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, skill_id FROM candidate_skills ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.CandidateSkill{}
	for rows.Next() {
		var l domain.CandidateSkill
		if err := rows.Scan(&l.ID, &l.CandidateID, &l.SkillID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *candidateSkillRepository) GetByID(ctx context.Context, id int64) (*domain.CandidateSkill, error) {
	var l domain.CandidateSkill
	err := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, skill_id FROM candidate_skills WHERE id = $1`, id).
		Scan(&l.ID, &l.CandidateID, &l.SkillID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *candidateSkillRepository) Create(ctx context.Context, link *domain.CandidateSkill) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO candidate_skills (candidate_id, skill_id) VALUES ($1, $2) RETURNING id`,
		link.CandidateID, link.SkillID).
		Scan(&link.ID))
}

// DeleteWithOrphanCheck removes the association and deletes the skill it
// referenced when no other association remains, all in one transaction. The
// FOR UPDATE lock on the skill row blocks concurrent FK-checked inserts of
// new associations until this transaction commits, so the existence check
// cannot race with a create.
func (r *candidateSkillRepository) DeleteWithOrphanCheck(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var skillID int64
	if err := tx.QueryRow(ctx,
		`SELECT skill_id FROM candidate_skills WHERE id = $1`, id).Scan(&skillID); err != nil {
		return false, translateErr(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE id = $1`, id); err != nil {
		return false, fmt.Errorf("failed to delete candidate skill: %w", err)
	}

	var lockedID int64
	if err := tx.QueryRow(ctx,
		`SELECT id FROM skills WHERE id = $1 FOR UPDATE`, skillID).Scan(&lockedID); err != nil {
		return false, fmt.Errorf("failed to lock skill: %w", err)
	}

	var stillReferenced bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM candidate_skills WHERE skill_id = $1)`, skillID).
		Scan(&stillReferenced); err != nil {
		return false, fmt.Errorf("failed to check skill references: %w", err)
	}

	deleted := false
	if !stillReferenced {
		if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE id = $1`, skillID); err != nil {
			return false, fmt.Errorf("failed to delete orphaned skill: %w", err)
		}
		deleted = true
	}

	return deleted, tx.Commit(ctx)
}
