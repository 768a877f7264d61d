package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adithya2152/devconnect/internal/repository"
	"github.com/adithya2152/devconnect/internal/repository/mocks"
	"github.com/adithya2152/devconnect/internal/service"
)

// The asynq client connects lazily, so Verify paths can run without Redis.
func newOTPService(codes *mocks.OTPRepository) *service.OTPService {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:0"})
	return service.NewOTPService(codes, client)
}

func TestOTPService_Verify_Success(t *testing.T) {
	codes := new(mocks.OTPRepository)
	svc := newOTPService(codes)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	codes.On("Get", ctx, "dev@example.com").Return(string(hashed), nil).Once()
	codes.On("Delete", ctx, "dev@example.com").Return(nil).Once()

	err = svc.Verify(ctx, "dev@example.com", "123456")

	assert.NoError(t, err)
	codes.AssertExpectations(t)
}

func TestOTPService_Verify_WrongCode(t *testing.T) {
	codes := new(mocks.OTPRepository)
	svc := newOTPService(codes)
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	codes.On("Get", ctx, "dev@example.com").Return(string(hashed), nil).Once()

	err := svc.Verify(ctx, "dev@example.com", "654321")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidOTP))
	codes.AssertNotCalled(t, "Delete", ctx, "dev@example.com")
}

func TestOTPService_Verify_NoPendingCode(t *testing.T) {
	codes := new(mocks.OTPRepository)
	svc := newOTPService(codes)
	ctx := context.Background()

	codes.On("Get", ctx, "dev@example.com").Return("", repository.ErrOTPNotFound).Once()

	err := svc.Verify(ctx, "dev@example.com", "123456")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrOTPNotFound))
}
