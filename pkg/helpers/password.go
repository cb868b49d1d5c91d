package helpers

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts credential hashing so the auth service is
// not tied to one scheme.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(stored, submitted string) bool
}

// BcryptHasher is the production PasswordHasher.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptHasher) Compare(stored, submitted string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}
