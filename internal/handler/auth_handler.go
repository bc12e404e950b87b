package handler

import (
	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/middleware"
	"go-admin-console/internal/params"
	"go-admin-console/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type AuthHandler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type AuthHandlerImpl struct {
	authService usecase.AuthUsecase
	logger      *logrus.Logger
	validator   *validator.Validate
	// cookieMaxAge is the authToken cookie lifetime in seconds.
	cookieMaxAge int
}

func NewAuthHandler(authService usecase.AuthUsecase, logger *logrus.Logger, validator *validator.Validate, cookieMaxAge int) AuthHandler {
	return &AuthHandlerImpl{
		authService:  authService,
		logger:       logger,
		validator:    validator,
		cookieMaxAge: cookieMaxAge,
	}
}

func (h *AuthHandlerImpl) Login(c *gin.Context) {
	var req params.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse login request")
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid JSON format",
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		details := make(map[string]string)
		for _, err := range err.(validator.ValidationErrors) {
			details[err.Field()] = getValidationErrorMessage(err)
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Validation failed",
			"errors":  details,
		})
		return
	}

	authResponse, custErr := h.authService.Login(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.SetCookie(middleware.SessionCookie, authResponse.Token, h.cookieMaxAge, "/", "", false, true)

	resp := response.GeneralSuccessCustomMessageAndPayload("Success login admin", authResponse)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandlerImpl) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	resp := response.GeneralSuccessCustomMessageAndPayload("Logged out", nil)
	c.JSON(http.StatusOK, resp)
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "This field exceeds maximum length of " + err.Param()
	case "min":
		return "This field must be at least " + err.Param() + " characters"
	case "email":
		return "This field must be a valid email"
	case "oneof":
		return "This field must be one of: " + err.Param()
	case "gt":
		return "This field must be greater than " + err.Param()
	default:
		return "This field is invalid"
	}
}
