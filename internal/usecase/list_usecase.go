package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go-admin-console/internal/commons/response"
	"go-admin-console/internal/filter"
	"go-admin-console/internal/params"
	"go-admin-console/internal/resource"
	"go-admin-console/pkg/backend"
	"go-admin-console/pkg/token"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type ListUsecase interface {
	List(ctx context.Context, session *token.Session, cfg *resource.Config, req *params.ListRequest) (*params.ListResponse, *response.CustomError)
	Detail(ctx context.Context, session *token.Session, cfg *resource.Config, recordID string) ([]resource.DetailRow, *response.CustomError)
	Invalidate(ctx context.Context, resourceName string)
}

type ListUsecaseImpl struct {
	api      backend.API
	logger   *logrus.Logger
	cache    *redis.Client
	cacheTTL time.Duration
	// sequences hands out a monotonic fetch number per cache key so a slow
	// response can never overwrite the cache after a newer fetch for the same
	// query completed. Fetches for other pages or filter sets are independent.
	sequences sync.Map // cache key -> *uint64
}

func NewListUsecase(api backend.API, logger *logrus.Logger, cache *redis.Client, cacheTTL time.Duration) ListUsecase {
	return &ListUsecaseImpl{
		api:      api,
		logger:   logger,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func listCacheKey(resourceName string, applied filter.State, page, pageSize int) string {
	query := url.Values{}
	for k, v := range applied {
		query.Set(k, v)
	}
	return fmt.Sprintf("list:%s:%s:%d:%d", resourceName, query.Encode(), page, pageSize)
}

func listCachePattern(resourceName string) string {
	return fmt.Sprintf("list:%s:*", resourceName)
}

func lastGoodKey(cacheKey string) string {
	return "last:" + cacheKey
}

func (u *ListUsecaseImpl) counter(cacheKey string) *uint64 {
	value, _ := u.sequences.LoadOrStore(cacheKey, new(uint64))
	return value.(*uint64)
}

func (u *ListUsecaseImpl) List(ctx context.Context, session *token.Session, cfg *resource.Config, req *params.ListRequest) (*params.ListResponse, *response.CustomError) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if !params.ValidPageSize(pageSize) {
		pageSize = params.PageSizes[0]
	}

	cacheKey := listCacheKey(cfg.Name, req.Applied, page, pageSize)
	if cached := u.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	counter := u.counter(cacheKey)
	seq := atomic.AddUint64(counter, 1)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	for field, value := range req.Applied {
		if value != "" {
			query.Set(field, value)
		}
	}

	fetched, err := u.api.FetchPage(ctx, session.BackendToken, cfg.Path, cfg.PluralKey, query)
	if err != nil {
		u.logger.WithError(err).WithField("resource", cfg.Name).Error("Failed to fetch resource page")
		// a failed refresh keeps the previously loaded page visible
		if stale := u.fromCache(ctx, lastGoodKey(cacheKey)); stale != nil {
			stale.Stale = true
			stale.Message = "Refresh failed; showing previously loaded results"
			return stale, nil
		}
		return nil, upstreamFailure(err)
	}

	resp := &params.ListResponse{
		Items:       fetched.Items,
		CurrentPage: fetched.Pagination.CurrentPage,
		TotalPages:  fetched.Pagination.TotalPages,
		PageSize:    pageSize,
	}
	if len(fetched.Items) == 0 {
		resp.Message = emptyResultMessage(cfg, req.Applied)
	}

	if atomic.LoadUint64(counter) == seq {
		u.toCache(ctx, cacheKey, resp)
	} else {
		u.logger.WithFields(logrus.Fields{
			"resource": cfg.Name,
			"sequence": seq,
		}).Info("Discarding stale list response, newer fetch in flight")
	}

	return resp, nil
}

// Detail fetches one record and projects it through the resource's
// field-type schema for display.
func (u *ListUsecaseImpl) Detail(ctx context.Context, session *token.Session, cfg *resource.Config, recordID string) ([]resource.DetailRow, *response.CustomError) {
	record, err := u.api.FetchRecord(ctx, session.BackendToken, cfg.Path+"/"+recordID, strings.TrimSuffix(cfg.PluralKey, "s"))
	if err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{
			"resource":  cfg.Name,
			"record_id": recordID,
		}).Error("Failed to fetch record detail")
		return nil, upstreamFailure(err)
	}
	return cfg.Detail(record), nil
}

// Invalidate drops every cached page of a resource after a mutation, the same
// keys-then-delete pattern used for the transaction cache.
func (u *ListUsecaseImpl) Invalidate(ctx context.Context, resourceName string) {
	invalidateListCache(ctx, u.cache, u.logger, resourceName)
}

func invalidateListCache(ctx context.Context, cache *redis.Client, logger *logrus.Logger, resourceName string) {
	if cache == nil {
		return
	}
	for _, pattern := range []string{listCachePattern(resourceName), lastGoodKey(listCachePattern(resourceName))} {
		if keys, err := cache.Keys(ctx, pattern).Result(); err == nil {
			if len(keys) > 0 {
				if err := cache.Del(ctx, keys...).Err(); err != nil {
					logger.WithError(err).Warn("Failed to invalidate list cache")
				}
			}
		} else {
			logger.WithError(err).Warn("Failed to fetch list cache keys for invalidation")
		}
	}
}

func (u *ListUsecaseImpl) fromCache(ctx context.Context, key string) *params.ListResponse {
	if u.cache == nil {
		return nil
	}
	val, err := u.cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var cached params.ListResponse
	if json.Unmarshal([]byte(val), &cached) != nil {
		return nil
	}
	return &cached
}

func (u *ListUsecaseImpl) toCache(ctx context.Context, key string, resp *params.ListResponse) {
	if u.cache == nil {
		return
	}
	if data, err := json.Marshal(resp); err == nil {
		if err := u.cache.Set(ctx, key, data, u.cacheTTL).Err(); err != nil {
			u.logger.WithError(err).Warn("Failed to cache list page")
		}
		// the last-good copy outlives the TTL so a failed refresh can fall
		// back to it
		if err := u.cache.Set(ctx, lastGoodKey(key), data, 0).Err(); err != nil {
			u.logger.WithError(err).Warn("Failed to store last-good list page")
		}
	}
}

func emptyResultMessage(cfg *resource.Config, applied filter.State) string {
	described := cfg.Filter.Describe(applied)
	if described == "" {
		return fmt.Sprintf("No %s found", cfg.Name)
	}
	return fmt.Sprintf("No %s found with %s", cfg.Name, described)
}

// upstreamFailure maps a backend call error to the response envelope, keeping
// the backend's own message when it provided one.
func upstreamFailure(err error) *response.CustomError {
	if callErr, ok := err.(*backend.CallError); ok {
		return response.UpstreamError(callErr.Message)
	}
	return response.GeneralError("")
}
