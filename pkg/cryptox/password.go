// Package cryptox wraps the password hashing primitives used by the auth
// service. Hashes are bcrypt with a per-call random salt embedded in the
// output, so the same password never hashes to the same string twice.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor. 10 keeps offline brute force
// expensive without making signin latency unreasonable.
const PasswordCost = 10

// ErrPasswordMismatch reports that a plaintext password does not match the
// stored hash. Anything else returned from VerifyPassword means the stored
// hash itself is unusable.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// It returns ErrPasswordMismatch for a wrong password and a wrapped error for
// a malformed hash so callers can tell a bad credential from corrupt storage.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("cryptox: invalid password hash: %w", err)
}
