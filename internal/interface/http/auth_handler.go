package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/369Dsharma/Notes-backend/internal/application"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
	"github.com/369Dsharma/Notes-backend/pkg/response"
	"github.com/369Dsharma/Notes-backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type createAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// CreateAccount POST /create-account
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.RegisterLocal(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "Registration failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":        res.User.Public(),
		"accessToken": res.AccessToken,
	}, "Registration Successful")
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.LoginLocal(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "Login failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"email":       res.User.Email,
		"accessToken": res.AccessToken,
	}, "Login Successful")
}

// LoginGoogle POST /auth/google
func (h *AuthHandler) LoginGoogle(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.LoginGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		h.fail(c, err, "Google login failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":        res.User.Public(),
		"accessToken": res.AccessToken,
	}, "Google login successful")
}

// GetUser GET /get-user (auth required). Always re-reads the user so
// stale token claims cannot serve outdated state.
func (h *AuthHandler) GetUser(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "User not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u.Public()}, "User data retrieved successfully")
}

// UploadAvatar POST /profile/avatar (auth required, multipart form)
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString("userID")
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "cannot read avatar file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.fail(c, err, "avatar upload failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatarUrl": url}, "avatar updated")
}

// fail maps service errors to stable client responses; anything
// unrecognized is logged and reported as an internal fault.
func (h *AuthHandler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, application.ErrUserExists):
		response.Fail(c, http.StatusBadRequest, "User already exists", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Fail(c, http.StatusBadRequest, "User not found", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusBadRequest, "Email or Password is incorrect", nil)
	case errors.Is(err, application.ErrProviderConflict):
		response.Fail(c, http.StatusBadRequest, "Use email/password for this account.", nil)
	case errors.Is(err, application.ErrInvalidGoogleToken):
		response.Fail(c, http.StatusUnauthorized, "Google token invalid", nil)
	case errors.Is(err, application.ErrMissingEmailClaim):
		response.Fail(c, http.StatusBadRequest, "Email missing in Google token", nil)
	case errors.Is(err, helpers.ErrMissingSecret):
		response.Fail(c, http.StatusInternalServerError, "Server configuration error - ACCESS_TOKEN_SECRET not found", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(fallback)
		}
		response.Fail(c, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}
