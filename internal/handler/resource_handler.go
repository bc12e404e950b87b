package handler

import (
	"net/http"
	"strconv"
	"time"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/filter"
	"go-admin-console/internal/middleware"
	"go-admin-console/internal/params"
	"go-admin-console/internal/resource"
	"go-admin-console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ResourceHandler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Export(c *gin.Context)
}

type ResourceHandlerImpl struct {
	registry *resource.Registry
	list     usecase.ListUsecase
	export   usecase.ExportUsecase
	logger   *logrus.Logger
}

func NewResourceHandler(registry *resource.Registry, list usecase.ListUsecase, export usecase.ExportUsecase, logger *logrus.Logger) ResourceHandler {
	return &ResourceHandlerImpl{
		registry: registry,
		list:     list,
		export:   export,
		logger:   logger,
	}
}

// resolve looks up the resource config and the session; both are required by
// every resource endpoint.
func (h *ResourceHandlerImpl) resolve(c *gin.Context) (*resource.Config, bool) {
	name := c.Param("resource")
	cfg, ok := h.registry.Get(name)
	if !ok {
		resp := response.NotFoundError("Unknown resource: " + name)
		c.AbortWithStatusJSON(resp.StatusCode, resp)
		return nil, false
	}
	return cfg, true
}

// validateFilters builds the draft state from query parameters and runs the
// resource's validation rules. Validation errors never reach the backend.
func (h *ResourceHandlerImpl) validateFilters(c *gin.Context, cfg *resource.Config) (filter.State, bool) {
	draft := filter.State{}
	for _, field := range cfg.Filter.Fields() {
		draft[field] = c.Query(field)
	}

	result := cfg.Filter.Validate(draft, time.Now())
	if !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Validation failed",
			"errors":  result.Errors,
		})
		return nil, false
	}
	return result.Applied, true
}

func (h *ResourceHandlerImpl) List(c *gin.Context) {
	cfg, ok := h.resolve(c)
	if !ok {
		return
	}
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		resp := response.UnauthorizedErrorWithAdditionalInfo("")
		c.AbortWithStatusJSON(resp.StatusCode, resp)
		return
	}

	applied, ok := h.validateFilters(c, cfg)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || !params.ValidPageSize(pageSize) {
		pageSize = 10
	}

	listResp, custErr := h.list.List(c.Request.Context(), session, cfg, &params.ListRequest{
		Page:     page,
		PageSize: pageSize,
		Applied:  applied,
	})
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Resource list retrieved successfully", listResp)
	c.JSON(resp.StatusCode, resp)
}

func (h *ResourceHandlerImpl) Detail(c *gin.Context) {
	cfg, ok := h.resolve(c)
	if !ok {
		return
	}
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		resp := response.UnauthorizedErrorWithAdditionalInfo("")
		c.AbortWithStatusJSON(resp.StatusCode, resp)
		return
	}

	rows, custErr := h.list.Detail(c.Request.Context(), session, cfg, c.Param("id"))
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Record detail retrieved successfully", rows)
	c.JSON(resp.StatusCode, resp)
}

func (h *ResourceHandlerImpl) Export(c *gin.Context) {
	cfg, ok := h.resolve(c)
	if !ok {
		return
	}
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		resp := response.UnauthorizedErrorWithAdditionalInfo("")
		c.AbortWithStatusJSON(resp.StatusCode, resp)
		return
	}

	applied, ok := h.validateFilters(c, cfg)
	if !ok {
		return
	}

	result, custErr := h.export.Export(c.Request.Context(), session, cfg, applied)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(result.Content))
}
