package testutil

import (
	"context"

	dapr "github.com/dapr/go-sdk/client"
	"github.com/stretchr/testify/mock"
)

// MockDaprPublisher is a testify mock for the publishing half of dapr.Client.
// Publish options are recorded as their count, since the option funcs are not comparable.
type MockDaprPublisher struct {
	mock.Mock
}

func (m *MockDaprPublisher) PublishEvent(ctx context.Context, pubsubName, topicName string, data interface{}, opts ...dapr.PublishEventOption) error {
	args := m.Called(ctx, pubsubName, topicName, data, len(opts))
	return args.Error(0)
}
