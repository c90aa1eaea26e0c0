package postgres

import (
	"context"

	"go-cv-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type summaryRepository struct {
	db *pgxpool.Pool
}

func NewSummaryRepository(db *pgxpool.Pool) domain.SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) SkillNamesByCandidateID(ctx context.Context, candidateID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.skill_name
		 FROM candidate_skills cs
		 JOIN skills s ON cs.skill_id = s.id
		 WHERE cs.candidate_id = $1
		 ORDER BY cs.id`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *summaryRepository) ProjectsByCandidateID(ctx context.Context, candidateID int64) ([]domain.ProjectSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.project_name, p.project_description
		 FROM candidate_projects cp
		 JOIN projects p ON cp.project_id = p.id
		 WHERE cp.candidate_id = $1
		 ORDER BY cp.id`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.ProjectSummary{}
	for rows.Next() {
		var p domain.ProjectSummary
		if err := rows.Scan(&p.ProjectName, &p.ProjectDescription); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *summaryRepository) ContactsByCandidateID(ctx context.Context, candidateID int64) ([]domain.ContactSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.contact, ct.contact_type
		 FROM contacts c
		 JOIN contact_types ct ON c.contact_type_id = ct.id
		 WHERE c.candidate_id = $1
		 ORDER BY c.id`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []domain.ContactSummary{}
	for rows.Next() {
		var c domain.ContactSummary
		if err := rows.Scan(&c.Contact, &c.ContactType); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
