package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	"github.com/369Dsharma/Notes-backend/internal/infrastructure/googleauth"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

type fakeGoogle struct {
	payload *googleauth.Payload
	err     error
}

func (f *fakeGoogle) Verify(context.Context, string) (*googleauth.Payload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newAuthService(users *fakeUsers, audit *fakeAudit, google GoogleVerifier) *AuthService {
	return NewAuthService(users, audit, helpers.NewJWTManager("test-secret", time.Hour), helpers.BcryptHasher{}, google, nil, "", nil)
}

func TestRegisterLocal(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users, &fakeAudit{}, nil)

	res, err := svc.RegisterLocal(context.Background(), "Alice", "alice@b.com", "password1")
	if err != nil {
		t.Fatalf("RegisterLocal error: %v", err)
	}
	if res.AccessToken == "" {
		t.Error("expected an access token")
	}
	u := res.User
	if u.AuthProvider != entity.ProviderLocal {
		t.Errorf("expected local provider, got %q", u.AuthProvider)
	}
	if u.EmailVerified {
		t.Error("password signup should start unverified")
	}
	if u.Password == "password1" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterLocalDuplicate(t *testing.T) {
	users := newFakeUsers(&entity.User{ID: "u1", Email: "alice@b.com"})
	svc := newAuthService(users, &fakeAudit{}, nil)

	_, err := svc.RegisterLocal(context.Background(), "Alice", "alice@b.com", "password1")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginLocal(t *testing.T) {
	hash, _ := helpers.BcryptHasher{}.Hash("password1")
	users := newFakeUsers(&entity.User{ID: "u1", Email: "alice@b.com", Password: hash, AuthProvider: entity.ProviderLocal})
	svc := newAuthService(users, &fakeAudit{}, nil)
	ctx := context.Background()

	res, err := svc.LoginLocal(ctx, "alice@b.com", "password1")
	if err != nil {
		t.Fatalf("LoginLocal error: %v", err)
	}
	if res.User.ID != "u1" || res.AccessToken == "" {
		t.Errorf("unexpected result: %+v", res)
	}

	if _, err := svc.LoginLocal(ctx, "alice@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.LoginLocal(ctx, "ghost@b.com", "password1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginLocalRepoFaultIsNotUserNotFound(t *testing.T) {
	users := newFakeUsers()
	users.getErr = errors.New("connection refused")
	svc := newAuthService(users, &fakeAudit{}, nil)

	_, err := svc.LoginLocal(context.Background(), "a@b.com", "password1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("storage fault must not map to a client error, got %v", err)
	}
}

func TestLoginGoogleFirstLoginCreatesAccount(t *testing.T) {
	users := newFakeUsers()
	audit := &fakeAudit{}
	svc := newAuthService(users, audit, &fakeGoogle{payload: &googleauth.Payload{Email: "g@b.com", Name: "Gee", Verified: true}})

	res, err := svc.LoginGoogle(context.Background(), "token")
	if err != nil {
		t.Fatalf("LoginGoogle error: %v", err)
	}
	u := res.User
	if u.AuthProvider != entity.ProviderGoogle || !u.EmailVerified {
		t.Errorf("unexpected user state: %+v", u)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != entity.AuditGoogleSignup {
		t.Errorf("expected a google signup audit entry, got %+v", audit.entries)
	}
}

func TestLoginGoogleProviderConflict(t *testing.T) {
	users := newFakeUsers(&entity.User{ID: "u1", Email: "g@b.com", AuthProvider: entity.ProviderLocal})
	svc := newAuthService(users, &fakeAudit{}, &fakeGoogle{payload: &googleauth.Payload{Email: "g@b.com", Name: "Gee"}})

	_, err := svc.LoginGoogle(context.Background(), "token")
	if !errors.Is(err, ErrProviderConflict) {
		t.Fatalf("expected ErrProviderConflict, got %v", err)
	}
}

func TestLoginGoogleUpgradesLegacyAccount(t *testing.T) {
	// account predating provider tracking: no provider recorded
	users := newFakeUsers(&entity.User{ID: "u1", Email: "g@b.com", FullName: "Gee"})
	audit := &fakeAudit{}
	svc := newAuthService(users, audit, &fakeGoogle{payload: &googleauth.Payload{Email: "g@b.com", Name: "Gee"}})

	res, err := svc.LoginGoogle(context.Background(), "token")
	if err != nil {
		t.Fatalf("LoginGoogle error: %v", err)
	}
	if res.User.AuthProvider != entity.ProviderGoogle {
		t.Errorf("expected provider upgrade, got %q", res.User.AuthProvider)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != entity.AuditProviderUpgrade {
		t.Errorf("expected a provider upgrade audit entry, got %+v", audit.entries)
	}
}

func TestLoginGoogleBadToken(t *testing.T) {
	svc := newAuthService(newFakeUsers(), &fakeAudit{}, &fakeGoogle{err: errors.New("bad signature")})
	if _, err := svc.LoginGoogle(context.Background(), "token"); !errors.Is(err, ErrInvalidGoogleToken) {
		t.Fatalf("expected ErrInvalidGoogleToken, got %v", err)
	}
}

func TestLoginGoogleMissingEmail(t *testing.T) {
	svc := newAuthService(newFakeUsers(), &fakeAudit{}, &fakeGoogle{payload: &googleauth.Payload{Name: "NoMail"}})
	if _, err := svc.LoginGoogle(context.Background(), "token"); !errors.Is(err, ErrMissingEmailClaim) {
		t.Fatalf("expected ErrMissingEmailClaim, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	users := newFakeUsers(&entity.User{ID: "u1", Email: "a@b.com"})
	svc := newAuthService(users, &fakeAudit{}, nil)

	u, err := svc.GetProfile("u1")
	if err != nil || u.Email != "a@b.com" {
		t.Fatalf("unexpected result: %v %v", u, err)
	}
	if _, err := svc.GetProfile("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIssueFailsWithoutSecret(t *testing.T) {
	users := newFakeUsers()
	svc := NewAuthService(users, &fakeAudit{}, helpers.NewJWTManager("", time.Hour), helpers.BcryptHasher{}, nil, nil, "", nil)

	_, err := svc.RegisterLocal(context.Background(), "Alice", "alice@b.com", "password1")
	if !errors.Is(err, helpers.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}
