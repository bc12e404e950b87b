package usecase

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go-admin-console/internal/commons/csv"
	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/filter"
	"go-admin-console/internal/params"
	"go-admin-console/internal/resource"
	"go-admin-console/pkg/backend"
	"go-admin-console/pkg/token"

	"github.com/sirupsen/logrus"
)

type ExportUsecase interface {
	Export(ctx context.Context, session *token.Session, cfg *resource.Config, applied filter.State) (*params.ExportResult, *response.CustomError)
}

type ExportUsecaseImpl struct {
	api    backend.API
	logger *logrus.Logger
	rowCap int
	// inflight guards one export per resource at a time.
	inflight sync.Map
}

func NewExportUsecase(api backend.API, logger *logrus.Logger, rowCap int) ExportUsecase {
	return &ExportUsecaseImpl{
		api:    api,
		logger: logger,
		rowCap: rowCap,
	}
}

func (u *ExportUsecaseImpl) Export(ctx context.Context, session *token.Session, cfg *resource.Config, applied filter.State) (*params.ExportResult, *response.CustomError) {
	if _, busy := u.inflight.LoadOrStore(cfg.Name, struct{}{}); busy {
		return nil, response.ConflictError("An export for this resource is already running")
	}
	defer u.inflight.Delete(cfg.Name)

	query := url.Values{}
	query.Set("page", "1")
	query.Set("page_size", strconv.Itoa(u.rowCap))
	for field, value := range applied {
		if value != "" {
			query.Set(field, value)
		}
	}

	page, err := u.api.FetchPage(ctx, session.BackendToken, cfg.Path, cfg.PluralKey, query)
	if err != nil {
		u.logger.WithError(err).WithField("resource", cfg.Name).Error("Failed to fetch rows for export")
		return nil, upstreamFailure(err)
	}

	if len(page.Items) == 0 {
		return nil, response.BadRequestError("No data to export")
	}

	rows := make([][]string, len(page.Items))
	for i, item := range page.Items {
		rows[i] = cfg.Row(item)
	}

	result := &params.ExportResult{
		Filename: csv.Filename(cfg.Name, time.Now()),
		Content:  csv.Build(cfg.Header(), rows),
		Rows:     len(rows),
	}

	u.logger.WithFields(logrus.Fields{
		"resource": cfg.Name,
		"rows":     result.Rows,
		"filename": result.Filename,
	}).Info("Export generated")

	return result, nil
}
