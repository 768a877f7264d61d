package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithya2152/devconnect/internal/service"
)

// OTPHandler serves the unauthenticated one-time-code endpoints.
type OTPHandler struct {
	otpService *service.OTPService
}

func NewOTPHandler(otpService *service.OTPService) *OTPHandler {
	if otpService == nil {
		panic("OTPService cannot be nil for OTPHandler")
	}
	return &OTPHandler{otpService: otpService}
}

type sendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Send handles POST /send-otp.
func (h *OTPHandler) Send(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.otpService.Send(c.Request.Context(), req.Email); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "OTP sent"})
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// Verify handles POST /verify-otp.
func (h *OTPHandler) Verify(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.otpService.Verify(c.Request.Context(), req.Email, req.Code); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "OTP verified"})
}
