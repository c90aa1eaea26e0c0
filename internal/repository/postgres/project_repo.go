package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-cv-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type projectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, project_name, project_description FROM projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.ProjectName, &p.ProjectDescription); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRow(ctx,
		`SELECT id, project_name, project_description FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.ProjectName, &p.ProjectDescription)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO projects (project_name, project_description) VALUES ($1, $2) RETURNING id`,
		project.ProjectName, project.ProjectDescription).
		Scan(&project.ID))
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET project_name = $1, project_description = $2 WHERE id = $3`,
		project.ProjectName, project.ProjectDescription, project.ID)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type candidateProjectRepository struct {
	db *pgxpool.Pool
}

func NewCandidateProjectRepository(db *pgxpool.Pool) domain.CandidateProjectRepository {
	return &candidateProjectRepository{db: db}
}

func (r *candidateProjectRepository) List(ctx context.Context) ([]domain.CandidateProject, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, project_id FROM candidate_projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.CandidateProject{}
	for rows.Next() {
		var l domain.CandidateProject
		if err := rows.Scan(&l.ID, &l.CandidateID, &l.ProjectID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *candidateProjectRepository) GetByID(ctx context.Context, id int64) (*domain.CandidateProject, error) {
	var l domain.CandidateProject
	err := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, project_id FROM candidate_projects WHERE id = $1`, id).
		Scan(&l.ID, &l.CandidateID, &l.ProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *candidateProjectRepository) Create(ctx context.Context, link *domain.CandidateProject) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO candidate_projects (candidate_id, project_id) VALUES ($1, $2) RETURNING id`,
		link.CandidateID, link.ProjectID).
		Scan(&link.ID))
}

// DeleteWithOrphanCheck mirrors the candidate-skill variant: association
// delete, skill-row lock, orphan re-check and conditional project delete run
// as one transaction.
func (r *candidateProjectRepository) DeleteWithOrphanCheck(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var projectID int64
	if err := tx.QueryRow(ctx,
		`SELECT project_id FROM candidate_projects WHERE id = $1`, id).Scan(&projectID); err != nil {
		return false, translateErr(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_projects WHERE id = $1`, id); err != nil {
		return false, fmt.Errorf("failed to delete candidate project: %w", err)
	}

	var lockedID int64
	if err := tx.QueryRow(ctx,
		`SELECT id FROM projects WHERE id = $1 FOR UPDATE`, projectID).Scan(&lockedID); err != nil {
		return false, fmt.Errorf("failed to lock project: %w", err)
	}

	var stillReferenced bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM candidate_projects WHERE project_id = $1)`, projectID).
		Scan(&stillReferenced); err != nil {
		return false, fmt.Errorf("failed to check project references: %w", err)
	}

	deleted := false
	if !stillReferenced {
		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID); err != nil {
			return false, fmt.Errorf("failed to delete orphaned project: %w", err)
		}
		deleted = true
	}

	return deleted, tx.Commit(ctx)
}
