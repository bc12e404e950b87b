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

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type KycUsecase interface {
	Decide(ctx context.Context, session *token.Session, submissionID string, req *params.KycDecisionRequest) (*params.KycDecisionResult, *response.CustomError)
}

type KycUsecaseImpl struct {
	api    backend.API
	logger *logrus.Logger
	cache  *redis.Client
	audit  repository.AuditRepository
}

func NewKycUsecase(api backend.API, logger *logrus.Logger, cache *redis.Client, audit repository.AuditRepository) KycUsecase {
	return &KycUsecaseImpl{
		api:    api,
		logger: logger,
		cache:  cache,
		audit:  audit,
	}
}

// Decide forwards an approve/reject decision for one KYC submission. The
// message is optional; an empty one is still a valid decision.
func (u *KycUsecaseImpl) Decide(ctx context.Context, session *token.Session, submissionID string, req *params.KycDecisionRequest) (*params.KycDecisionResult, *response.CustomError) {
	body := map[string]any{
		"status":  req.Status,
		"message": req.Message,
	}

	_, err := u.api.Send(ctx, session.BackendToken, http.MethodPatch, "/admin/kyc/"+submissionID+"/decision", body)
	if err != nil {
		u.recordAudit(ctx, session, submissionID, req.Status, entity.AuditStatusFailed)
		u.logger.WithError(err).WithField("submission_id", submissionID).Error("KYC decision failed upstream")
		return nil, upstreamFailure(err)
	}

	u.recordAudit(ctx, session, submissionID, req.Status, entity.AuditStatusSucceeded)
	invalidateListCache(ctx, u.cache, u.logger, "kyc-submissions")
	invalidateListCache(ctx, u.cache, u.logger, "users")

	u.logger.WithFields(logrus.Fields{
		"submission_id": submissionID,
		"status":        req.Status,
	}).Info("KYC decision recorded")

	return &params.KycDecisionResult{
		SubmissionID: submissionID,
		Status:       req.Status,
	}, nil
}

func (u *KycUsecaseImpl) recordAudit(ctx context.Context, session *token.Session, submissionID, status string, outcome entity.AuditStatus) {
	entry := &entity.AuditEntry{
		Actor:    session.Email,
		Action:   "kyc_decision",
		Resource: "kyc-submissions",
		TargetID: submissionID,
		Detail:   status,
		Status:   outcome,
	}
	if err := u.audit.Create(ctx, entry); err != nil {
		u.logger.WithError(err).Warn("Failed to record audit entry for KYC decision")
	}
}
