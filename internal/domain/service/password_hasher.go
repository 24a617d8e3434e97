// Package service defines domain service interfaces implemented by infra.
package service

// PasswordHasher abstracts password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether password matches the stored hash.
	Check(password, hash string) bool
}
