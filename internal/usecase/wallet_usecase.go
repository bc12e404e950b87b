package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/entity"
	"go-admin-console/internal/params"
	"go-admin-console/internal/repository"
	"go-admin-console/pkg/backend"
	"go-admin-console/pkg/token"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const usersPath = "/admin/users"

type WalletUsecase interface {
	Adjust(ctx context.Context, session *token.Session, req *params.WalletAdjustRequest) (any, *response.CustomError)
}

type WalletUsecaseImpl struct {
	api     backend.API
	logger  *logrus.Logger
	cache   *redis.Client
	audit   repository.AuditRepository
	ceiling float64
}

func NewWalletUsecase(api backend.API, logger *logrus.Logger, cache *redis.Client, audit repository.AuditRepository, ceiling float64) WalletUsecase {
	return &WalletUsecaseImpl{
		api:     api,
		logger:  logger,
		cache:   cache,
		audit:   audit,
		ceiling: ceiling,
	}
}

// Adjust credits or debits a user's wallet. The target is resolved by email
// and the request is checked against the ceiling and, for debits, the user's
// fetched balance before anything is sent upstream. Without confirm=true the
// computed preview is returned and nothing is mutated.
func (u *WalletUsecaseImpl) Adjust(ctx context.Context, session *token.Session, req *params.WalletAdjustRequest) (any, *response.CustomError) {
	user, custErr := u.lookupUser(ctx, session, req.Email)
	if custErr != nil {
		return nil, custErr
	}

	userID, _ := user["id"].(string)
	name, _ := user["name"].(string)
	balance, _ := user["wallet_balance"].(float64)

	if req.Amount > u.ceiling {
		return nil, response.BadRequestError(fmt.Sprintf("Amount exceeds the maximum adjustment of %.0f", u.ceiling))
	}

	projected := balance + req.Amount
	if req.Type == "debit" {
		if req.Amount > balance {
			u.logger.WithFields(logrus.Fields{
				"user_id":         userID,
				"current_balance": balance,
				"debit_amount":    req.Amount,
			}).Warn("Debit rejected, amount exceeds user balance")
			return nil, response.BadRequestError("Reduction amount exceeds user balance")
		}
		projected = balance - req.Amount
	}

	if !req.Confirm {
		return &params.WalletAdjustPreview{
			UserID:               userID,
			Name:                 name,
			Email:                req.Email,
			Type:                 req.Type,
			Amount:               req.Amount,
			CurrentBalance:       balance,
			ProjectedBalance:     projected,
			RequiresConfirmation: true,
		}, nil
	}

	body := map[string]any{
		"user_id": userID,
		"type":    req.Type,
		"amount":  req.Amount,
		"remark":  req.Remark,
	}
	envelope, err := u.api.Send(ctx, session.BackendToken, http.MethodPost, "/admin/wallets/adjust", body)
	if err != nil {
		u.recordAudit(ctx, session, req, userID, entity.AuditStatusFailed)
		u.logger.WithError(err).WithField("user_id", userID).Error("Wallet adjustment failed upstream")
		return nil, upstreamFailure(err)
	}

	newBalance := projected
	var data struct {
		NewBalance *float64 `json:"new_balance"`
	}
	if json.Unmarshal(envelope.Data, &data) == nil && data.NewBalance != nil {
		newBalance = *data.NewBalance
	}

	u.recordAudit(ctx, session, req, userID, entity.AuditStatusSucceeded)
	invalidateListCache(ctx, u.cache, u.logger, "users")
	invalidateListCache(ctx, u.cache, u.logger, "wallet-transactions")

	u.logger.WithFields(logrus.Fields{
		"user_id":     userID,
		"type":        req.Type,
		"amount":      req.Amount,
		"new_balance": newBalance,
	}).Info("Wallet adjustment completed")

	return &params.WalletAdjustResult{
		UserID:     userID,
		Email:      req.Email,
		Type:       req.Type,
		Amount:     req.Amount,
		NewBalance: newBalance,
	}, nil
}

func (u *WalletUsecaseImpl) lookupUser(ctx context.Context, session *token.Session, email string) (map[string]any, *response.CustomError) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("page", "1")
	query.Set("page_size", "10")

	page, err := u.api.FetchPage(ctx, session.BackendToken, usersPath, "users", query)
	if err != nil {
		u.logger.WithError(err).WithField("email", email).Error("Failed to look up user by email")
		return nil, upstreamFailure(err)
	}

	for _, item := range page.Items {
		if itemEmail, _ := item["email"].(string); itemEmail == email {
			return item, nil
		}
	}
	return nil, response.NotFoundError(fmt.Sprintf("No user found with email: %s", email))
}

func (u *WalletUsecaseImpl) recordAudit(ctx context.Context, session *token.Session, req *params.WalletAdjustRequest, userID string, status entity.AuditStatus) {
	detail := fmt.Sprintf("%s %.2f (%s)", req.Type, req.Amount, req.Remark)
	entry := &entity.AuditEntry{
		Actor:    session.Email,
		Action:   "wallet_" + req.Type,
		Resource: "users",
		TargetID: userID,
		Detail:   detail,
		Status:   status,
	}
	if err := u.audit.Create(ctx, entry); err != nil {
		u.logger.WithError(err).Warn("Failed to record audit entry for wallet adjustment")
	}
}
