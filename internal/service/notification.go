package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
	"github.com/adithya2152/devconnect/internal/tasks"
)

// NotificationDispatcher is the write side of notifications: fire an event
// for a recipient without blocking the caller on the notification store.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, recipientID, senderID, notificationType, message string) error
}

// NotificationService reads notifications synchronously and dispatches new
// ones through the task queue; the worker does the actual insert.
type NotificationService struct {
	notifications repository.NotificationRepository
	asynqClient   *asynq.Client
}

func NewNotificationService(notifications repository.NotificationRepository, asynqClient *asynq.Client) *NotificationService {
	if notifications == nil {
		panic("NotificationRepository cannot be nil for NotificationService")
	}
	if asynqClient == nil {
		panic("asynq client cannot be nil for NotificationService")
	}
	return &NotificationService{notifications: notifications, asynqClient: asynqClient}
}

// List returns the recipient's latest notifications plus the unread count.
func (s *NotificationService) List(ctx context.Context, recipientID string) ([]domain.Notification, int64, error) {
	logCtx := logrus.WithField("recipient_id", recipientID)

	items, err := s.notifications.FindRecent(ctx, recipientID, 20)
	if err != nil {
		logCtx.WithError(err).Error("Failed to fetch notifications")
		return nil, 0, ErrInternalServer
	}
	unread, err := s.notifications.CountUnread(ctx, recipientID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to count unread notifications")
		return nil, 0, ErrInternalServer
	}
	return items, unread, nil
}

// MarkAllRead marks every unread notification of the recipient as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	if err := s.notifications.MarkAllRead(ctx, recipientID); err != nil {
		logrus.WithError(err).WithField("recipient_id", recipientID).Error("Failed to mark notifications read")
		return ErrInternalServer
	}
	return nil
}

// Dispatch enqueues a delivery task. A queue failure is logged and
// swallowed: notifications are best effort and must never fail the
// triggering operation.
func (s *NotificationService) Dispatch(ctx context.Context, recipientID, senderID, notificationType, message string) error {
	task, err := tasks.NewNotificationDeliveryTask(recipientID, senderID, notificationType, message)
	if err != nil {
		logrus.WithError(err).Error("Failed to build notification task payload")
		return nil
	}
	if _, err := s.asynqClient.EnqueueContext(ctx, task); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"recipient_id": recipientID,
			"type":         notificationType,
		}).Error("Failed to enqueue notification delivery")
	}
	return nil
}
