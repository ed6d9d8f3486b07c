package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor. 10 rounds keeps hashing slow enough to
// resist brute force without stalling staff management under load.
const HashCost = 10

// Service hashes and verifies staff passwords. Plaintext never leaves this
// package: it is neither persisted nor logged.
type Service struct{}

func NewCredentialService() *Service {
	return &Service{}
}

// Hash derives a salted one-way hash from the plaintext password.
func (s *Service) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), HashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. The comparison does
// not leak timing proportional to the matching prefix.
func (s *Service) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
