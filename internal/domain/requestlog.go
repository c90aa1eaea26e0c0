package domain

import (
	"context"
	"time"
)

// RequestLog is an append-only audit record of an inbound request.
// Rows are never updated or deleted by the system.
type RequestLog struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	QueryString string    `json:"query_string"`
	RemoteIP    string    `json:"remote_ip"`
	UserAgent   string    `json:"user_agent"`
	UserID      *int64    `json:"user_id,omitempty"`
}

type RequestLogRepository interface {
	Create(ctx context.Context, entry *RequestLog) error
	Recent(ctx context.Context, limit int) ([]RequestLog, error)
}

type RequestLogUsecase interface {
	Record(ctx context.Context, entry *RequestLog) error
	Recent(ctx context.Context, limit int) ([]RequestLog, error)
}
