package usecase_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"go-admin-console/internal/filter"
	"go-admin-console/internal/params"
	"go-admin-console/internal/resource"
	"go-admin-console/internal/usecase"
	"go-admin-console/pkg/backend"
	"go-admin-console/pkg/token"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupListTest(t *testing.T) (*backend.MockClient, *miniredis.Miniredis, usecase.ListUsecase) {
	mockAPI := new(backend.MockClient)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	lu := usecase.NewListUsecase(mockAPI, logger, rdb, time.Minute)

	return mockAPI, mr, lu
}

func testSession() *token.Session {
	return &token.Session{
		AdminID:      "admin-1",
		Email:        "admin@example.com",
		BackendToken: "backend-token",
	}
}

func usersConfig(t *testing.T) *resource.Config {
	cfg, ok := resource.DefaultRegistry().Get("users")
	if !ok {
		t.Fatal("users resource not registered")
	}
	return cfg
}

func TestList_Success(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	page := &backend.Page{
		Items: []map[string]any{
			{"id": "u1", "email": "jane@example.com"},
			{"id": "u2", "email": "john@example.com"},
		},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 3},
	}
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).Return(page, nil)

	resp, custErr := lu.List(context.Background(), testSession(), cfg, &params.ListRequest{
		Page:     1,
		PageSize: 10,
	})

	assert.Nil(t, custErr)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Empty(t, resp.Message)

	mockAPI.AssertExpectations(t)
}

func TestList_SecondCallServedFromCache(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	page := &backend.Page{
		Items:      []map[string]any{{"id": "u1"}},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 1},
	}
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).Return(page, nil)

	req := &params.ListRequest{Page: 1, PageSize: 10}
	_, custErr := lu.List(context.Background(), testSession(), cfg, req)
	assert.Nil(t, custErr)

	resp, custErr := lu.List(context.Background(), testSession(), cfg, req)
	assert.Nil(t, custErr)
	assert.Len(t, resp.Items, 1)

	mockAPI.AssertNumberOfCalls(t, "FetchPage", 1)
}

func TestList_NormalizesPageAndSize(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	page := &backend.Page{Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 0}}
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("page") == "1" && q.Get("page_size") == "10"
	})).Return(page, nil)

	resp, custErr := lu.List(context.Background(), testSession(), cfg, &params.ListRequest{
		Page:     0,
		PageSize: 7,
	})

	assert.Nil(t, custErr)
	assert.Equal(t, 10, resp.PageSize)

	mockAPI.AssertExpectations(t)
}

func TestList_EmptyResultMessage(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	page := &backend.Page{
		Items:      []map[string]any{},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 0},
	}
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).Return(page, nil)

	resp, custErr := lu.List(context.Background(), testSession(), cfg, &params.ListRequest{
		Page:     1,
		PageSize: 10,
		Applied:  filter.State{"email": "foo@bar.com"},
	})

	assert.Nil(t, custErr)
	assert.Equal(t, "No users found with email: foo@bar.com", resp.Message)
}

func TestList_FailureWithoutCacheSurfacesBackendMessage(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).
		Return(nil, &backend.CallError{StatusCode: 500, Message: "upstream exploded"})

	resp, custErr := lu.List(context.Background(), testSession(), cfg, &params.ListRequest{Page: 1, PageSize: 10})

	assert.Nil(t, resp)
	assert.NotNil(t, custErr)
	assert.Equal(t, "upstream exploded", custErr.Message)
}

func TestList_FailureWithoutMessageIsGeneric(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).
		Return(nil, &backend.CallError{StatusCode: 500})

	_, custErr := lu.List(context.Background(), testSession(), cfg, &params.ListRequest{Page: 1, PageSize: 10})

	assert.NotNil(t, custErr)
	assert.Equal(t, "Internal server error", custErr.Message)
}

func TestList_FailedRefreshFallsBackToLastGoodPage(t *testing.T) {
	mockAPI, mr, lu := setupListTest(t)
	cfg := usersConfig(t)

	page := &backend.Page{
		Items:      []map[string]any{{"id": "u1"}},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 1},
	}
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).
		Return(page, nil).Once()
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).
		Return(nil, &backend.CallError{StatusCode: 500, Message: "down"})

	req := &params.ListRequest{Page: 1, PageSize: 10}
	_, custErr := lu.List(context.Background(), testSession(), cfg, req)
	assert.Nil(t, custErr)

	// expire the TTL'd page so the next call refetches and fails
	mr.FastForward(2 * time.Minute)

	resp, custErr := lu.List(context.Background(), testSession(), cfg, req)
	assert.Nil(t, custErr)
	assert.True(t, resp.Stale)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "Refresh failed; showing previously loaded results", resp.Message)
}

func TestList_SlowResponseCannotOverwriteNewerPage(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	oldPage := &backend.Page{
		Items:      []map[string]any{{"id": "old"}},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 1},
	}
	newPage := &backend.Page{
		Items:      []map[string]any{{"id": "new"}},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 1},
	}

	started := make(chan struct{})
	release := make(chan struct{})
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).Return(oldPage, nil).Once()
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).
		Return(newPage, nil).Once()

	req := &params.ListRequest{Page: 1, PageSize: 10}
	done := make(chan *params.ListResponse, 1)
	go func() {
		resp, _ := lu.List(context.Background(), testSession(), cfg, req)
		done <- resp
	}()

	// a second fetch for the same query completes while the first hangs
	<-started
	resp, custErr := lu.List(context.Background(), testSession(), cfg, req)
	assert.Nil(t, custErr)
	assert.Equal(t, "new", resp.Items[0]["id"])

	close(release)
	slow := <-done
	assert.Equal(t, "old", slow.Items[0]["id"])

	// the slow response was discarded; the cache still holds the newer page
	cached, custErr := lu.List(context.Background(), testSession(), cfg, req)
	assert.Nil(t, custErr)
	assert.Equal(t, "new", cached.Items[0]["id"])
	mockAPI.AssertNumberOfCalls(t, "FetchPage", 2)
}

func TestList_FetchForAnotherPageDoesNotSuppressCaching(t *testing.T) {
	mockAPI, _, lu := setupListTest(t)
	cfg := usersConfig(t)

	pageOne := &backend.Page{
		Items:      []map[string]any{{"id": "p1"}},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 2},
	}
	pageTwo := &backend.Page{
		Items:      []map[string]any{{"id": "p2"}},
		Pagination: backend.Pagination{CurrentPage: 2, TotalPages: 2},
	}

	started := make(chan struct{})
	release := make(chan struct{})
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("page") == "1"
	})).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(pageOne, nil).Once()
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("page") == "2"
	})).Return(pageTwo, nil).Once()

	done := make(chan struct{})
	go func() {
		_, _ = lu.List(context.Background(), testSession(), cfg, &params.ListRequest{Page: 1, PageSize: 10})
		close(done)
	}()

	<-started
	_, custErr := lu.List(context.Background(), testSession(), cfg, &params.ListRequest{Page: 2, PageSize: 10})
	assert.Nil(t, custErr)

	close(release)
	<-done

	// the two queries are independent; both pages end up cached
	_, _ = lu.List(context.Background(), testSession(), cfg, &params.ListRequest{Page: 1, PageSize: 10})
	_, _ = lu.List(context.Background(), testSession(), cfg, &params.ListRequest{Page: 2, PageSize: 10})
	mockAPI.AssertNumberOfCalls(t, "FetchPage", 2)
}

func TestInvalidate_DropsCachedPages(t *testing.T) {
	mockAPI, mr, lu := setupListTest(t)
	cfg := usersConfig(t)

	page := &backend.Page{
		Items:      []map[string]any{{"id": "u1"}},
		Pagination: backend.Pagination{CurrentPage: 1, TotalPages: 1},
	}
	mockAPI.On("FetchPage", mock.Anything, "backend-token", cfg.Path, cfg.PluralKey, mock.Anything).Return(page, nil)

	req := &params.ListRequest{Page: 1, PageSize: 10}
	_, _ = lu.List(context.Background(), testSession(), cfg, req)

	lu.Invalidate(context.Background(), cfg.Name)
	assert.Empty(t, mr.Keys())

	_, _ = lu.List(context.Background(), testSession(), cfg, req)
	mockAPI.AssertNumberOfCalls(t, "FetchPage", 2)
}
