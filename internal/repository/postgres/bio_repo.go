package postgres

import (
	"context"
	"errors"

	"go-cv-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bioItemRepository struct {
	db *pgxpool.Pool
}

func NewBioItemRepository(db *pgxpool.Pool) domain.BioItemRepository {
	return &bioItemRepository{db: db}
}

func (r *bioItemRepository) List(ctx context.Context) ([]domain.BioItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, bio_item, candidate_id FROM bio_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bios := []domain.BioItem{}
	for rows.Next() {
		var b domain.BioItem
		if err := rows.Scan(&b.ID, &b.BioItem, &b.CandidateID); err != nil {
			return nil, err
		}
		bios = append(bios, b)
	}
	return bios, rows.Err()
}

func (r *bioItemRepository) GetByID(ctx context.Context, id int64) (*domain.BioItem, error) {
	var b domain.BioItem
	err := r.db.QueryRow(ctx,
		`SELECT id, bio_item, candidate_id FROM bio_items WHERE id = $1`, id).
		Scan(&b.ID, &b.BioItem, &b.CandidateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bioItemRepository) GetByCandidateID(ctx context.Context, candidateID int64) (*domain.BioItem, error) {
	var b domain.BioItem
	err := r.db.QueryRow(ctx,
		`SELECT id, bio_item, candidate_id FROM bio_items WHERE candidate_id = $1`, candidateID).
		Scan(&b.ID, &b.BioItem, &b.CandidateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bioItemRepository) Create(ctx context.Context, bio *domain.BioItem) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO bio_items (bio_item, candidate_id) VALUES ($1, $2) RETURNING id`,
		bio.BioItem, bio.CandidateID).
		Scan(&bio.ID))
}

func (r *bioItemRepository) Update(ctx context.Context, bio *domain.BioItem) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bio_items SET bio_item = $1 WHERE id = $2`, bio.BioItem, bio.ID)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bioItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bio_items WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
