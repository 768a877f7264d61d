// Package tasks defines the asynq task types and payload constructors
// shared by enqueuers and the worker.
package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TypeNotificationDeliver writes one notification row.
	TypeNotificationDeliver = "notification:deliver"
	// TypeOTPEmail sends one verification-code email.
	TypeOTPEmail = "otp:email"
)

// NotificationDeliveryPayload is the body of a notification:deliver task.
type NotificationDeliveryPayload struct {
	RecipientID string `json:"recipient_id"`
	SenderID    string `json:"sender_id"`
	Type        string `json:"type"`
	Message     string `json:"message"`
}

// NewNotificationDeliveryTask builds a delivery task for the worker.
func NewNotificationDeliveryTask(recipientID, senderID, notificationType, message string) (*asynq.Task, error) {
	payload, err := json.Marshal(NotificationDeliveryPayload{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notificationType,
		Message:     message,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotificationDeliver, payload), nil
}

// OTPEmailPayload is the body of an otp:email task. It carries the clear
// code; only the hash is ever stored.
type OTPEmailPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// NewOTPEmailTask builds an OTP email task for the worker.
func NewOTPEmailTask(email, code string) (*asynq.Task, error) {
	payload, err := json.Marshal(OTPEmailPayload{Email: email, Code: code})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOTPEmail, payload, asynq.Queue("critical")), nil
}
