package usecase

import (
	"context"
	"math"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/entity"
	"go-admin-console/internal/repository"

	"github.com/sirupsen/logrus"
)

type AuditListResponse struct {
	Entries    []*entity.AuditEntry `json:"entries"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

type AuditUsecase interface {
	List(ctx context.Context, limit, offset int) (*AuditListResponse, *response.CustomError)
}

type AuditUsecaseImpl struct {
	repo   repository.AuditRepository
	logger *logrus.Logger
}

func NewAuditUsecase(repo repository.AuditRepository, logger *logrus.Logger) AuditUsecase {
	return &AuditUsecaseImpl{
		repo:   repo,
		logger: logger,
	}
}

func (u *AuditUsecaseImpl) List(ctx context.Context, limit, offset int) (*AuditListResponse, *response.CustomError) {
	entries, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list audit entries")
		return nil, response.RepositoryError("failed to list audit entries")
	}

	total, err := u.repo.Count(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to count audit entries")
		return nil, response.RepositoryError("failed to count audit entries")
	}

	page := (offset / limit) + 1
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &AuditListResponse{
		Entries:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
