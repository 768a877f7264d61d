package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/mailer"
	"github.com/adithya2152/devconnect/internal/repository"
	"github.com/adithya2152/devconnect/internal/tasks"
)

// NotificationDeliveryHandler writes queued notifications to the store.
type NotificationDeliveryHandler struct {
	notifications repository.NotificationRepository
}

func NewNotificationDeliveryHandler(notifications repository.NotificationRepository) *NotificationDeliveryHandler {
	return &NotificationDeliveryHandler{notifications: notifications}
}

// ProcessTask implements asynq.Handler.
func (h *NotificationDeliveryHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	logCtx := logrus.WithField("task_type", t.Type())

	var payload tasks.NotificationDeliveryPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logCtx.WithError(err).Error("Failed to unmarshal notification payload")
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	notification := &domain.Notification{
		RecipientID: payload.RecipientID,
		SenderID:    payload.SenderID,
		Type:        payload.Type,
		Message:     payload.Message,
	}
	if err := h.notifications.Save(ctx, notification); err != nil {
		logCtx.WithError(err).Error("Failed to persist notification")
		return fmt.Errorf("failed to save notification: %w", err)
	}

	logCtx.WithFields(logrus.Fields{
		"recipient_id": payload.RecipientID,
		"type":         payload.Type,
	}).Info("Notification delivered")
	return nil
}

// OTPEmailHandler sends queued one-time-code mails.
type OTPEmailHandler struct {
	mail *mailer.Mailer
}

func NewOTPEmailHandler(mail *mailer.Mailer) *OTPEmailHandler {
	return &OTPEmailHandler{mail: mail}
}

// ProcessTask implements asynq.Handler.
func (h *OTPEmailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	logCtx := logrus.WithField("task_type", t.Type())

	var payload tasks.OTPEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logCtx.WithError(err).Error("Failed to unmarshal OTP email payload")
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.mail.SendOTP(payload.Email, payload.Code); err != nil {
		return err
	}
	return nil
}
