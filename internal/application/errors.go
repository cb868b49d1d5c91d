package application

import "errors"

// Sentinel errors for the auth and OTP flows. Handlers map these onto
// stable client-facing messages; anything else is an internal fault.
var (
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrProviderConflict    = errors.New("use local credentials for this account")
	ErrInvalidGoogleToken  = errors.New("google token invalid")
	ErrMissingEmailClaim   = errors.New("email missing in google token")
	ErrInvalidCode         = errors.New("invalid code")
	ErrCodeExpired         = errors.New("code expired")
	ErrMissingSignupFields = errors.New("name and password required for signup")
	ErrMailDispatch        = errors.New("failed to send otp")
	ErrNoteNotFound        = errors.New("note not found")
	ErrNoChanges           = errors.New("no changes provided")
)
