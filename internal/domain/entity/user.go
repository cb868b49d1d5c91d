package entity

import (
	"time"
)

// Auth providers a user can be bound to. A user authenticates through
// exactly one provider at a time; switching providers is an explicit,
// audited transition.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and is empty for google-provider accounts.
type User struct {
	ID            string
	Email         string
	Password      string
	FullName      string
	AvatarURL     string
	AuthProvider  string
	EmailVerified bool
	CreatedOn     time.Time
	UpdatedAt     time.Time
}

// PublicUser is the projection returned to clients. It never carries
// the password hash.
type PublicUser struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedOn time.Time `json:"createdOn"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedOn: u.CreatedOn,
	}
}
