package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/adithya2152/devconnect/internal/repository"
	"github.com/adithya2152/devconnect/internal/tasks"
)

const otpTTL = 10 * time.Minute

// OTPService issues and verifies one-time email codes. Codes are stored
// hashed so a Redis dump never exposes a usable code.
type OTPService struct {
	codes       repository.OTPRepository
	asynqClient *asynq.Client
}

func NewOTPService(codes repository.OTPRepository, asynqClient *asynq.Client) *OTPService {
	if codes == nil || asynqClient == nil {
		panic("OTPService dependencies cannot be nil")
	}
	return &OTPService{codes: codes, asynqClient: asynqClient}
}

// Send generates a 6-digit code, stores its bcrypt hash with a 10 minute
// TTL and queues the delivery email.
func (s *OTPService) Send(ctx context.Context, email string) error {
	logCtx := logrus.WithField("email", email)

	code, err := generateCode()
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate OTP code")
		return ErrInternalServer
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash OTP code")
		return ErrInternalServer
	}
	if err := s.codes.Store(ctx, email, string(hashed), otpTTL); err != nil {
		logCtx.WithError(err).Error("Failed to store OTP code")
		return ErrInternalServer
	}

	task, err := tasks.NewOTPEmailTask(email, code)
	if err != nil {
		logCtx.WithError(err).Error("Failed to build OTP email task")
		return ErrInternalServer
	}
	if _, err := s.asynqClient.Enqueue(task); err != nil {
		logCtx.WithError(err).Error("Failed to enqueue OTP email")
		return ErrInternalServer
	}

	logCtx.Info("OTP code issued")
	return nil
}

// Verify checks a submitted code against the stored hash and consumes it on
// success. A code can be used at most once.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	logCtx := logrus.WithField("email", email)

	hashed, err := s.codes.Get(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return ErrOTPNotFound
		}
		logCtx.WithError(err).Error("Failed to load OTP code")
		return ErrInternalServer
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(code)); err != nil {
		return ErrInvalidOTP
	}

	if err := s.codes.Delete(ctx, email); err != nil {
		logCtx.WithError(err).Warn("Failed to consume OTP code")
	}
	logCtx.Info("OTP code verified")
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
