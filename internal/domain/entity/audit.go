package entity

import "time"

// Audit actions recorded by the auth flows.
const (
	AuditProviderUpgrade = "auth_provider_upgrade"
	AuditGoogleSignup    = "google_signup"
	AuditOTPSignup       = "otp_signup"
)

// AuditEntry records a security-relevant account event, in particular
// the provider upgrade that converts a local account to Google login.
type AuditEntry struct {
	ID        string
	UserID    string
	Email     string
	Action    string
	Metadata  map[string]any
	CreatedAt time.Time
}
