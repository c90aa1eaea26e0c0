package postgres

import (
	"context"
	"errors"

	"go-cv-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactTypeRepository struct {
	db *pgxpool.Pool
}

func NewContactTypeRepository(db *pgxpool.Pool) domain.ContactTypeRepository {
	return &contactTypeRepository{db: db}
}

func (r *contactTypeRepository) List(ctx context.Context) ([]domain.ContactType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, contact_type FROM contact_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []domain.ContactType{}
	for rows.Next() {
		var ct domain.ContactType
		if err := rows.Scan(&ct.ID, &ct.ContactType); err != nil {
			return nil, err
		}
		types = append(types, ct)
	}
	return types, rows.Err()
}

func (r *contactTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ContactType, error) {
	var ct domain.ContactType
	err := r.db.QueryRow(ctx, `SELECT id, contact_type FROM contact_types WHERE id = $1`, id).
		Scan(&ct.ID, &ct.ContactType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ct, nil
}

func (r *contactTypeRepository) Create(ctx context.Context, ct *domain.ContactType) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO contact_types (contact_type) VALUES ($1) RETURNING id`, ct.ContactType).
		Scan(&ct.ID))
}

func (r *contactTypeRepository) Update(ctx context.Context, ct *domain.ContactType) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contact_types SET contact_type = $1 WHERE id = $2`, ct.ContactType, ct.ID)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactTypeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_types WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type contactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, contact, candidate_id, contact_type_id FROM contacts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Contact, &c.CandidateID, &c.ContactTypeID); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	var c domain.Contact
	err := r.db.QueryRow(ctx,
		`SELECT id, contact, candidate_id, contact_type_id FROM contacts WHERE id = $1`, id).
		Scan(&c.ID, &c.Contact, &c.CandidateID, &c.ContactTypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO contacts (contact, candidate_id, contact_type_id) VALUES ($1, $2, $3) RETURNING id`,
		contact.Contact, contact.CandidateID, contact.ContactTypeID).
		Scan(&contact.ID))
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contacts SET contact = $1, candidate_id = $2, contact_type_id = $3 WHERE id = $4`,
		contact.Contact, contact.CandidateID, contact.ContactTypeID, contact.ID)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
