package googleauth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// ErrMissingClientID is returned when no OAuth client id is configured.
// Validation without an audience would accept tokens minted for any
// application, so verification refuses every token instead.
var ErrMissingClientID = errors.New("google client id is not configured")

// Payload is the subset of Google ID-token claims the auth flow needs.
type Payload struct {
	Email    string
	Name     string
	Verified bool
}

// Verifier validates Google ID tokens against the configured OAuth
// client id (audience).
type Verifier struct {
	ClientID string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{ClientID: clientID}
}

// Verify checks the token's signature, expiry, and audience and
// extracts the identity claims. Any validation failure is returned
// as-is for logging; callers map it to a single generic rejection.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*Payload, error) {
	if v.ClientID == "" {
		return nil, ErrMissingClientID
	}
	p, err := idtoken.Validate(ctx, idToken, v.ClientID)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}
	out := &Payload{}
	if email, ok := p.Claims["email"].(string); ok {
		out.Email = email
	}
	if name, ok := p.Claims["name"].(string); ok {
		out.Name = name
	}
	if verified, ok := p.Claims["email_verified"].(bool); ok {
		out.Verified = verified
	}
	return out, nil
}
