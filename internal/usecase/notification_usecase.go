package usecase

import (
	"context"
	"net/http"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/entity"
	"go-admin-console/internal/params"
	"go-admin-console/internal/repository"
	"go-admin-console/pkg/backend"
	"go-admin-console/pkg/token"

	"github.com/sirupsen/logrus"
)

type NotificationUsecase interface {
	Send(ctx context.Context, session *token.Session, req *params.NotificationRequest) (*params.NotificationResult, *response.CustomError)
}

type NotificationUsecaseImpl struct {
	api    backend.API
	logger *logrus.Logger
	audit  repository.AuditRepository
}

func NewNotificationUsecase(api backend.API, logger *logrus.Logger, audit repository.AuditRepository) NotificationUsecase {
	return &NotificationUsecaseImpl{
		api:    api,
		logger: logger,
		audit:  audit,
	}
}

func (u *NotificationUsecaseImpl) Send(ctx context.Context, session *token.Session, req *params.NotificationRequest) (*params.NotificationResult, *response.CustomError) {
	body := map[string]any{
		"title":   req.Title,
		"message": req.Message,
		"topic":   req.Topic,
	}

	_, err := u.api.Send(ctx, session.BackendToken, http.MethodPost, "/admin/notifications/send", body)
	if err != nil {
		u.recordAudit(ctx, session, req, entity.AuditStatusFailed)
		u.logger.WithError(err).WithField("topic", req.Topic).Error("Notification send failed upstream")
		return nil, upstreamFailure(err)
	}

	u.recordAudit(ctx, session, req, entity.AuditStatusSucceeded)

	u.logger.WithFields(logrus.Fields{
		"topic": req.Topic,
		"title": req.Title,
	}).Info("Notification sent")

	return &params.NotificationResult{
		Topic: req.Topic,
		Title: req.Title,
	}, nil
}

func (u *NotificationUsecaseImpl) recordAudit(ctx context.Context, session *token.Session, req *params.NotificationRequest, status entity.AuditStatus) {
	entry := &entity.AuditEntry{
		Actor:    session.Email,
		Action:   "notification_send",
		Resource: "notifications",
		TargetID: req.Topic,
		Detail:   req.Title,
		Status:   status,
	}
	if err := u.audit.Create(ctx, entry); err != nil {
		u.logger.WithError(err).Warn("Failed to record audit entry for notification")
	}
}
