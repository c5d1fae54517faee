package fortnite

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fortbot/fortniteapi"
	"fortbot/models"
)

// MockFetcher is a mock implementation of fortniteapi.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Get(ctx context.Context, req fortniteapi.Request) (*fortniteapi.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fortniteapi.Response), args.Error(1)
}

// MockReplier is a mock implementation of common.Replier
type MockReplier struct {
	mock.Mock
}

func (m *MockReplier) RespondWithPayload(payload *models.DisplayPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockReplier) RespondWithError(message string, ephemeral bool) error {
	args := m.Called(message, ephemeral)
	return args.Error(0)
}

// okResponse builds a successful envelope around raw data
func okResponse(data string) *fortniteapi.Response {
	return &fortniteapi.Response{Status: fortniteapi.StatusOK, Data: []byte(data)}
}
