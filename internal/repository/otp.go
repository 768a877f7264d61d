package repository

import (
	"context"
	"time"
)

// OTPRepository stores one-time verification codes keyed by email address.
// Codes are short-lived; the implementation enforces the TTL.
type OTPRepository interface {
	// Store saves the hashed code for an email, replacing any previous one,
	// expiring after ttl.
	Store(ctx context.Context, email, hashedCode string, ttl time.Duration) error

	// Get returns the stored hash for an email, or ErrOTPNotFound when no
	// code is pending (never issued, expired, or already consumed).
	Get(ctx context.Context, email string) (string, error)

	// Delete consumes the pending code for an email.
	Delete(ctx context.Context, email string) error
}
