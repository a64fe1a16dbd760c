package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrPasswordMismatch indicates the supplied password does not match the
// stored one.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a stored password with a supplied candidate.
	// Returns nil on success, or an error on failure (e.g., mismatch).
	Compare(stored, supplied string) error
}

// PlaintextVerifier implements PasswordVerifier by direct comparison.
// The user store this service fronts holds passwords in plaintext;
// credential hardening is an acknowledged gap, out of scope here.
type PlaintextVerifier struct{}

// NewPlaintextVerifier creates a new PlaintextVerifier.
func NewPlaintextVerifier() *PlaintextVerifier {
	return &PlaintextVerifier{}
}

// Compare implements the PasswordVerifier interface. The comparison is
// constant-time to avoid leaking match prefixes through timing.
// An empty supplied password is a legal, simply non-matching value.
func (v *PlaintextVerifier) Compare(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
