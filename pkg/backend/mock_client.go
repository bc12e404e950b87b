package backend

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) FetchPage(ctx context.Context, token, path, pluralKey string, query url.Values) (*Page, error) {
	args := m.Called(ctx, token, path, pluralKey, query)
	if args.Get(0) != nil {
		return args.Get(0).(*Page), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClient) FetchRecord(ctx context.Context, token, path, key string) (map[string]any, error) {
	args := m.Called(ctx, token, path, key)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]any), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClient) Send(ctx context.Context, token, method, path string, body any) (*Envelope, error) {
	args := m.Called(ctx, token, method, path, body)
	if args.Get(0) != nil {
		return args.Get(0).(*Envelope), args.Error(1)
	}
	return nil, args.Error(1)
}
