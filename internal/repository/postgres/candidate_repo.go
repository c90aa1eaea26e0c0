package postgres

import (
	"context"
	"errors"

	"go-cv-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, created_by FROM candidates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CreatedBy); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, created_by FROM candidates WHERE id = $1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO candidates (first_name, last_name, created_by) VALUES ($1, $2, $3) RETURNING id`,
		candidate.FirstName, candidate.LastName, candidate.CreatedBy).
		Scan(&candidate.ID))
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE candidates SET first_name = $1, last_name = $2 WHERE id = $3`,
		candidate.FirstName, candidate.LastName, candidate.ID)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
