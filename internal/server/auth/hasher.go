package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the work factor historically used for the
// stored hashes. bcrypt output self-describes its cost, so raising it
// later does not break verification of existing records.
const DefaultBcryptCost = 12

// PasswordHasher produces and verifies one-way salted password hashes.
type PasswordHasher interface {
	// Hash returns the salted hash of plaintext.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash. A mismatch
	// is not an error, just false.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Costs
// outside bcrypt's supported range fall back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
