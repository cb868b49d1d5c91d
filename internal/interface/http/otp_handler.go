package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/369Dsharma/Notes-backend/internal/application"
	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
	"github.com/369Dsharma/Notes-backend/pkg/response"
	"github.com/369Dsharma/Notes-backend/pkg/validation"
)

type OTPHandler struct {
	Svc    *application.OTPService
	Logger *logrus.Logger
}

func NewOTPHandler(svc *application.OTPService, logger *logrus.Logger) *OTPHandler {
	return &OTPHandler{Svc: svc, Logger: logger}
}

type sendOtpRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose" binding:"omitempty,oneof=signup login"`
}

type verifyOtpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required,otpcode"`
	Purpose  string `json:"purpose" binding:"omitempty,oneof=signup login"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// SendOtp POST /send-otp
func (h *OTPHandler) SendOtp(c *gin.Context) {
	var req sendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Purpose == "" {
		req.Purpose = entity.OTPPurposeSignup
	}
	if err := h.Svc.SendCode(c.Request.Context(), req.Email, req.Purpose); err != nil {
		if errors.Is(err, application.ErrMailDispatch) {
			response.Fail(c, http.StatusInternalServerError, "Failed to send OTP", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("send otp failed")
		}
		response.Fail(c, http.StatusInternalServerError, "Internal Server Error", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "OTP sent")
}

// VerifyOtp POST /verify-otp
func (h *OTPHandler) VerifyOtp(c *gin.Context) {
	var req verifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Purpose == "" {
		req.Purpose = entity.OTPPurposeSignup
	}
	res, err := h.Svc.VerifyCode(c.Request.Context(), application.VerifyInput{
		Email:    req.Email,
		Code:     req.Code,
		Purpose:  req.Purpose,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":        res.User.Public(),
		"accessToken": res.AccessToken,
	}, "Verification successful")
}

func (h *OTPHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCode):
		response.Fail(c, http.StatusBadRequest, "Invalid code", nil)
	case errors.Is(err, application.ErrCodeExpired):
		response.Fail(c, http.StatusBadRequest, "Code expired", nil)
	case errors.Is(err, application.ErrMissingSignupFields):
		response.Fail(c, http.StatusBadRequest, "Name and password required for signup", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Fail(c, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, helpers.ErrMissingSecret):
		response.Fail(c, http.StatusInternalServerError, "Server configuration error - ACCESS_TOKEN_SECRET not found", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("verify otp failed")
		}
		response.Fail(c, http.StatusInternalServerError, "Verification failed", nil)
	}
}
