package handler

import (
	"net/http"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/middleware"
	"go-admin-console/internal/params"
	"go-admin-console/internal/usecase"
	"go-admin-console/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type ActionHandler interface {
	KycDecision(c *gin.Context)
	WalletAdjust(c *gin.Context)
	NotificationSend(c *gin.Context)
}

type ActionHandlerImpl struct {
	kyc          usecase.KycUsecase
	wallet       usecase.WalletUsecase
	notification usecase.NotificationUsecase
	logger       *logrus.Logger
	validator    *validator.Validate
}

func NewActionHandler(kyc usecase.KycUsecase, wallet usecase.WalletUsecase, notification usecase.NotificationUsecase, logger *logrus.Logger, validator *validator.Validate) ActionHandler {
	return &ActionHandlerImpl{
		kyc:          kyc,
		wallet:       wallet,
		notification: notification,
		logger:       logger,
		validator:    validator,
	}
}

func (h *ActionHandlerImpl) getSession(c *gin.Context) (*token.Session, bool) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		h.logger.Error("session not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  false,
			"message": "Unauthorized",
		})
		return nil, false
	}
	return session, true
}

func (h *ActionHandlerImpl) bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.WithError(err).Error("Invalid request payload")
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid request payload",
		})
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		details := make(map[string]string)
		for _, err := range err.(validator.ValidationErrors) {
			details[err.Field()] = getValidationErrorMessage(err)
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Validation failed",
			"errors":  details,
		})
		return false
	}
	return true
}

func (h *ActionHandlerImpl) KycDecision(c *gin.Context) {
	session, ok := h.getSession(c)
	if !ok {
		return
	}

	var req params.KycDecisionRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	result, custErr := h.kyc.Decide(c.Request.Context(), session, c.Param("id"), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("KYC decision submitted successfully", result)
	c.JSON(resp.StatusCode, resp)
}

func (h *ActionHandlerImpl) WalletAdjust(c *gin.Context) {
	session, ok := h.getSession(c)
	if !ok {
		return
	}

	var req params.WalletAdjustRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	result, custErr := h.wallet.Adjust(c.Request.Context(), session, &req)
	if custErr != nil {
		c.JSON(custErr.StatusCode, custErr)
		return
	}

	message := "Wallet adjustment completed successfully"
	if preview, ok := result.(*params.WalletAdjustPreview); ok && preview.RequiresConfirmation {
		message = "Confirmation required"
	}
	resp := response.GeneralSuccessCustomMessageAndPayload(message, result)
	c.JSON(resp.StatusCode, resp)
}

func (h *ActionHandlerImpl) NotificationSend(c *gin.Context) {
	session, ok := h.getSession(c)
	if !ok {
		return
	}

	var req params.NotificationRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	result, custErr := h.notification.Send(c.Request.Context(), session, &req)
	if custErr != nil {
		c.JSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Notification sent successfully", result)
	c.JSON(resp.StatusCode, resp)
}
