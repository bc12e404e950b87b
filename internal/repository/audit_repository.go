package repository

import (
	"context"
	"fmt"
	"go-admin-console/internal/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *entity.AuditEntry) error
	List(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error)
	Count(ctx context.Context) (int64, error)
}

type AuditRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewAuditRepository(db *gorm.DB, logger *logrus.Logger) AuditRepository {
	return &AuditRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, entry *entity.AuditEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create audit entry in database")
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error) {
	var entries []*entity.AuditEntry

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	if err != nil {
		r.logger.WithError(err).Error("Failed to list audit entries")
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return entries, nil
}

func (r *AuditRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.AuditEntry{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return count, nil
}
