package postgres

import (
	"context"

	"go-cv-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type requestLogRepository struct {
	db *pgxpool.Pool
}

func NewRequestLogRepository(db *pgxpool.Pool) domain.RequestLogRepository {
	return &requestLogRepository{db: db}
}

func (r *requestLogRepository) Create(ctx context.Context, entry *domain.RequestLog) error {
	return translateErr(r.db.QueryRow(ctx,
		`INSERT INTO request_logs (ts, method, path, query_string, remote_ip, user_agent, user_id)
		 VALUES (NOW(), $1, $2, $3, $4, $5, $6) RETURNING id, ts`,
		entry.Method, entry.Path, entry.QueryString, entry.RemoteIP, entry.UserAgent, entry.UserID).
		Scan(&entry.ID, &entry.Timestamp))
}

func (r *requestLogRepository) Recent(ctx context.Context, limit int) ([]domain.RequestLog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ts, method, path, query_string, remote_ip, user_agent, user_id
		 FROM request_logs ORDER BY ts DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []domain.RequestLog{}
	for rows.Next() {
		var l domain.RequestLog
		if err := rows.Scan(&l.ID, &l.Timestamp, &l.Method, &l.Path, &l.QueryString,
			&l.RemoteIP, &l.UserAgent, &l.UserID); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
