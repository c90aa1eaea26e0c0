package usecase

import (
	"context"

	"go-cv-backend/internal/domain"
)

const defaultRecentLimit = 10

type requestLogUsecase struct {
	repo domain.RequestLogRepository
}

func NewRequestLogUsecase(repo domain.RequestLogRepository) domain.RequestLogUsecase {
	return &requestLogUsecase{repo: repo}
}

func (u *requestLogUsecase) Record(ctx context.Context, entry *domain.RequestLog) error {
	return u.repo.Create(ctx, entry)
}

func (u *requestLogUsecase) Recent(ctx context.Context, limit int) ([]domain.RequestLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return u.repo.Recent(ctx, limit)
}
