package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	repo "github.com/369Dsharma/Notes-backend/internal/domain/repository"
	"github.com/369Dsharma/Notes-backend/internal/infrastructure/googleauth"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

// GoogleVerifier validates an external Google identity assertion.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*googleauth.Payload, error)
}

// AuthService resolves identities (password or Google assertion) and
// turns them into signed access credentials.
type AuthService struct {
	Users     repo.UserRepository
	Audit     repo.AuditRepository
	JWT       *helpers.JWTManager
	Hasher    helpers.PasswordHasher
	Google    GoogleVerifier
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewAuthService(users repo.UserRepository, audit repo.AuditRepository, jwt *helpers.JWTManager, hasher helpers.PasswordHasher, google GoogleVerifier, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Users:     users,
		Audit:     audit,
		JWT:       jwt,
		Hasher:    hasher,
		Google:    google,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Logger:    logger,
	}
}

// AuthResult is the outcome of any successful authentication path.
type AuthResult struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// RegisterLocal creates a local, unverified account and issues a credential.
func (s *AuthService) RegisterLocal(ctx context.Context, fullName, email, password string) (*AuthResult, error) {
	existing, err := s.Users.GetByEmail(email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		FullName:     fullName,
		Email:        email,
		Password:     hash,
		AuthProvider: entity.ProviderLocal,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return s.issue(u)
}

// LoginLocal validates email/password. A missing user and a wrong
// password are distinct failures; neither issues a credential.
func (s *AuthService) LoginLocal(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !s.Hasher.Compare(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// LoginGoogle resolves a Google ID token to a user. Accounts bound to
// another provider are rejected; a first Google login creates the
// account, and a legacy account without a provider is upgraded in
// place with an audit entry.
func (s *AuthService) LoginGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	payload, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("google token verification failed")
		}
		return nil, ErrInvalidGoogleToken
	}
	if payload.Email == "" {
		return nil, ErrMissingEmailClaim
	}
	fullName := payload.Name
	if fullName == "" {
		fullName = "User"
	}

	u, err := s.Users.GetByEmail(payload.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if u != nil && u.AuthProvider != "" && u.AuthProvider != entity.ProviderGoogle {
		return nil, ErrProviderConflict
	}

	if u == nil {
		u = &entity.User{
			FullName:      fullName,
			Email:         payload.Email,
			AuthProvider:  entity.ProviderGoogle,
			EmailVerified: true,
		}
		if err := s.Users.Create(u); err != nil {
			return nil, err
		}
		s.audit(u, entity.AuditGoogleSignup, nil)
	} else {
		upgraded := u.AuthProvider != entity.ProviderGoogle
		u.AuthProvider = entity.ProviderGoogle
		u.EmailVerified = true
		if err := s.Users.Update(u); err != nil {
			return nil, err
		}
		if upgraded {
			s.audit(u, entity.AuditProviderUpgrade, map[string]any{"to": entity.ProviderGoogle})
		}
	}

	return s.issue(u)
}

// GetProfile does a fresh lookup; token claims are never trusted for
// current user state.
func (s *AuthService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UploadAvatar stores an avatar image in GCS and saves its URL.
func (s *AuthService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = url
	if err := s.Users.Update(u); err != nil {
		return "", err
	}
	return url, nil
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, err
	}
	return &AuthResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}

func (s *AuthService) audit(u *entity.User, action string, metadata map[string]any) {
	if s.Audit == nil {
		return
	}
	entry := &entity.AuditEntry{UserID: u.ID, Email: u.Email, Action: action, Metadata: metadata}
	if err := s.Audit.Insert(entry); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}
