package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies organization credentials. The rest of
// the system only ever sees opaque hashes.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher. A non-positive cost uses the
// bcrypt default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a one-way hash of the given plaintext password
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether password matches the stored hash
func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
