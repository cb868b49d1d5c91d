package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/369Dsharma/Notes-backend/internal/application"
	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	"github.com/369Dsharma/Notes-backend/internal/domain/repository"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
	"github.com/369Dsharma/Notes-backend/pkg/validation"
)

type memUsers struct {
	byEmail map[string]*entity.User
}

func (m *memUsers) Create(u *entity.User) error {
	if u.ID == "" {
		u.ID = "id-" + u.Email
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByEmail(email string) (*entity.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) Update(u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}

type memAudit struct{}

func (memAudit) Insert(*entity.AuditEntry) error { return nil }

type memStore struct {
	tokens map[string]*entity.OtpToken
}

func (m *memStore) Put(_ context.Context, email, purpose, code string, expiresAt time.Time) error {
	m.tokens[purpose+":"+email] = &entity.OtpToken{Email: email, Code: code, Purpose: purpose, ExpiresAt: expiresAt}
	return nil
}

func (m *memStore) Find(_ context.Context, email, code, purpose string) (*entity.OtpToken, error) {
	tok, ok := m.tokens[purpose+":"+email]
	if !ok || tok.Code != code {
		return nil, nil
	}
	return tok, nil
}

func (m *memStore) InvalidateAll(_ context.Context, email, purpose string) error {
	delete(m.tokens, purpose+":"+email)
	return nil
}

type memMailer struct{ lastCode string }

func (m *memMailer) SendOtpMail(_ context.Context, _, code string) error {
	m.lastCode = code
	return nil
}

func newOtpRouter(t *testing.T) (*gin.Engine, *memStore, *memMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	store := &memStore{tokens: map[string]*entity.OtpToken{}}
	mail := &memMailer{}
	users := &memUsers{byEmail: map[string]*entity.User{}}
	svc := application.NewOTPService(users, memAudit{}, store, mail, helpers.NewJWTManager("test-secret", time.Hour), helpers.BcryptHasher{}, nil, 10*time.Minute)
	h := NewOTPHandler(svc, nil)

	r := gin.New()
	r.POST("/send-otp", h.SendOtp)
	r.POST("/verify-otp", h.VerifyOtp)
	return r, store, mail
}

func doJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSendOtpEndpoint(t *testing.T) {
	r, store, mail := newOtpRouter(t)

	rec := doJSON(t, r, "/send-otp", `{"email":"a@b.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	tok := store.tokens["signup:a@b.com"]
	if tok == nil {
		t.Fatal("expected a stored signup code")
	}
	if mail.lastCode != tok.Code {
		t.Error("mailed code differs from stored code")
	}
}

func TestSendOtpEndpointRejectsBadPayload(t *testing.T) {
	r, _, _ := newOtpRouter(t)

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`, `{"email":"a@b.com","purpose":"reset"}`} {
		rec := doJSON(t, r, "/send-otp", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestVerifyOtpEndpointSignup(t *testing.T) {
	r, store, _ := newOtpRouter(t)

	if rec := doJSON(t, r, "/send-otp", `{"email":"a@b.com"}`); rec.Code != http.StatusOK {
		t.Fatalf("send-otp status = %d", rec.Code)
	}
	code := store.tokens["signup:a@b.com"].Code

	rec := doJSON(t, r, "/verify-otp", `{"email":"a@b.com","code":"`+code+`","fullName":"A","password":"password1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var parsed struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"accessToken"`
			User        struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !parsed.Success || parsed.Data.AccessToken == "" || parsed.Data.User.Email != "a@b.com" {
		t.Errorf("unexpected response: %s", rec.Body.String())
	}

	// the code is consumed
	rec = doJSON(t, r, "/verify-otp", `{"email":"a@b.com","code":"`+code+`","fullName":"A","password":"password1"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "Invalid code") {
		t.Errorf("expected Invalid code on reuse, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestVerifyOtpEndpointWrongCode(t *testing.T) {
	r, _, _ := newOtpRouter(t)

	if rec := doJSON(t, r, "/send-otp", `{"email":"a@b.com"}`); rec.Code != http.StatusOK {
		t.Fatalf("send-otp status = %d", rec.Code)
	}
	rec := doJSON(t, r, "/verify-otp", `{"email":"a@b.com","code":"000000","fullName":"A","password":"password1"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "Invalid code") {
		t.Errorf("expected Invalid code, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestVerifyOtpEndpointValidatesCodeShape(t *testing.T) {
	r, _, _ := newOtpRouter(t)

	rec := doJSON(t, r, "/verify-otp", `{"email":"a@b.com","code":"12ab56"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric code, got %d", rec.Code)
	}
	rec = doJSON(t, r, "/verify-otp", `{"email":"a@b.com","code":"1234"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short code, got %d", rec.Code)
	}
}
