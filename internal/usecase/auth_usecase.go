package usecase

import (
	"context"
	"encoding/json"
	"net/http"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/params"
	"go-admin-console/pkg/backend"
	"go-admin-console/pkg/token"

	"github.com/sirupsen/logrus"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *params.LoginRequest) (*params.AuthResponse, *response.CustomError)
}

type AuthUsecaseImpl struct {
	api        backend.API
	logger     *logrus.Logger
	jwtManager *token.TokenManager
}

func NewAuthUsecase(api backend.API, logger *logrus.Logger, jwtManager *token.TokenManager) AuthUsecase {
	return &AuthUsecaseImpl{
		api:        api,
		logger:     logger,
		jwtManager: jwtManager,
	}
}

// Login forwards the credentials to the core backend. Credential checking is
// entirely the backend's; on success the console mints its own session token
// wrapping the backend bearer token, to be stored in the authToken cookie.
func (s *AuthUsecaseImpl) Login(ctx context.Context, req *params.LoginRequest) (*params.AuthResponse, *response.CustomError) {
	envelope, err := s.api.Send(ctx, "", http.MethodPost, "/admin/login", req)
	if err != nil {
		s.logger.WithField("email", req.Email).Warn("Login rejected by backend")
		return nil, upstreamFailure(err)
	}

	var data struct {
		Token string `json:"token"`
		Admin struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil || data.Token == "" {
		s.logger.WithField("email", req.Email).Error("Malformed login response from backend")
		return nil, response.GeneralError("")
	}

	sessionToken, err := s.jwtManager.GenerateToken(data.Admin.ID, data.Admin.Email, data.Token)
	if err != nil {
		s.logger.WithError(err).WithField("admin_id", data.Admin.ID).Error("Failed to generate session token")
		return nil, response.GeneralError("failed to generate session token")
	}

	resp := &params.AuthResponse{
		Token: sessionToken,
	}
	resp.Admin.ID = data.Admin.ID
	resp.Admin.Name = data.Admin.Name
	resp.Admin.Email = data.Admin.Email

	s.logger.WithFields(logrus.Fields{
		"admin_id": data.Admin.ID,
		"email":    data.Admin.Email,
	}).Info("Admin logged in successfully")

	return resp, nil
}
