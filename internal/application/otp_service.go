package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	repo "github.com/369Dsharma/Notes-backend/internal/domain/repository"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

// OTPStore holds short-lived codes keyed by (email, purpose). Put
// replaces any previous code for the pair; the store auto-purges
// entries past their expiry.
type OTPStore interface {
	Put(ctx context.Context, email, purpose, code string, expiresAt time.Time) error
	Find(ctx context.Context, email, code, purpose string) (*entity.OtpToken, error)
	InvalidateAll(ctx context.Context, email, purpose string) error
}

// OtpMailer dispatches a verification code to a recipient.
type OtpMailer interface {
	SendOtpMail(ctx context.Context, to, code string) error
}

// OTPService orchestrates code generation, delivery, verification,
// consumption, and account creation/confirmation.
type OTPService struct {
	Users   repo.UserRepository
	Audit   repo.AuditRepository
	Store   OTPStore
	Mailer  OtpMailer
	JWT     *helpers.JWTManager
	Hasher  helpers.PasswordHasher
	Logger  *logrus.Logger
	CodeTTL time.Duration
}

func NewOTPService(users repo.UserRepository, audit repo.AuditRepository, store OTPStore, mailer OtpMailer, jwt *helpers.JWTManager, hasher helpers.PasswordHasher, logger *logrus.Logger, codeTTL time.Duration) *OTPService {
	if codeTTL <= 0 {
		codeTTL = 10 * time.Minute
	}
	return &OTPService{
		Users:   users,
		Audit:   audit,
		Store:   store,
		Mailer:  mailer,
		JWT:     jwt,
		Hasher:  hasher,
		Logger:  logger,
		CodeTTL: codeTTL,
	}
}

// SendCode generates a fresh code for (email, purpose), replacing any
// previous one, and dispatches it by mail. On delivery failure the
// stored code is left in place; it either gets verified after a retry
// or expires on its own.
func (s *OTPService) SendCode(ctx context.Context, email, purpose string) error {
	code, err := helpers.GenOTPCode()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(s.CodeTTL)
	if err := s.Store.Put(ctx, email, purpose, code, expiresAt); err != nil {
		return err
	}
	if err := s.Mailer.SendOtpMail(ctx, email, code); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("purpose", purpose).Warn("otp mail dispatch failed")
		}
		return fmt.Errorf("%w: %v", ErrMailDispatch, err)
	}
	return nil
}

// VerifyInput carries the verification request. FullName and Password
// are only consulted for a signup that creates a new account.
type VerifyInput struct {
	Email    string
	Code     string
	Purpose  string
	FullName string
	Password string
}

// VerifyCode checks the stored code and completes the flow: signup
// creates or confirms the account, login requires one to exist. A
// successful verification consumes the code and issues a credential.
func (s *OTPService) VerifyCode(ctx context.Context, in VerifyInput) (*AuthResult, error) {
	tok, err := s.Store.Find(ctx, in.Email, in.Code, in.Purpose)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, ErrInvalidCode
	}
	if tok.Expired(time.Now()) {
		return nil, ErrCodeExpired
	}

	u, err := s.Users.GetByEmail(in.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	switch in.Purpose {
	case entity.OTPPurposeSignup:
		if u == nil {
			if in.FullName == "" || in.Password == "" {
				return nil, ErrMissingSignupFields
			}
			hash, err := s.Hasher.Hash(in.Password)
			if err != nil {
				return nil, err
			}
			u = &entity.User{
				FullName:      in.FullName,
				Email:         in.Email,
				Password:      hash,
				AuthProvider:  entity.ProviderLocal,
				EmailVerified: true,
			}
			if err := s.Users.Create(u); err != nil {
				return nil, err
			}
			s.audit(u, entity.AuditOTPSignup)
		} else if !u.EmailVerified {
			u.EmailVerified = true
			if err := s.Users.Update(u); err != nil {
				return nil, err
			}
		}
	case entity.OTPPurposeLogin:
		if u == nil {
			return nil, ErrUserNotFound
		}
	default:
		return nil, ErrInvalidCode
	}

	// One-time use: consume before issuing the credential.
	if err := s.Store.InvalidateAll(ctx, in.Email, in.Purpose); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("otp consume failed")
	}

	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}

func (s *OTPService) audit(u *entity.User, action string) {
	if s.Audit == nil {
		return
	}
	entry := &entity.AuditEntry{UserID: u.ID, Email: u.Email, Action: action}
	if err := s.Audit.Insert(entry); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}
