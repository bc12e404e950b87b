package handler

import (
	"strconv"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuditHandler interface {
	List(c *gin.Context)
}

type AuditHandlerImpl struct {
	usecase usecase.AuditUsecase
	logger  *logrus.Logger
}

func NewAuditHandler(usecase usecase.AuditUsecase, logger *logrus.Logger) AuditHandler {
	return &AuditHandlerImpl{
		usecase: usecase,
		logger:  logger,
	}
}

func (h *AuditHandlerImpl) List(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	entries, custErr := h.usecase.List(c.Request.Context(), limit, offset)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Audit entries retrieved successfully", entries)
	c.JSON(resp.StatusCode, resp)
}
