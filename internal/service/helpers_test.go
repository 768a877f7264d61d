package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockDispatcher satisfies service.NotificationDispatcher for tests.
type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, recipientID, senderID, notificationType, message string) error {
	ret := m.Called(ctx, recipientID, senderID, notificationType, message)
	return ret.Error(0)
}
