package entity

import "time"

// OTP purposes. Signup codes may create an account on verification,
// login codes require one to exist already.
const (
	OTPPurposeSignup = "signup"
	OTPPurposeLogin  = "login"
)

// OtpToken is a short-lived verification code for one (email, purpose)
// pair. At most one unconsumed token exists per pair; storing a new one
// replaces any previous token.
type OtpToken struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	Purpose   string    `json:"purpose"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *OtpToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
