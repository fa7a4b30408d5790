// Package service declares the ports the use cases depend on. Implementations
// live under internal/infra.
package service

// PasswordHasher protects host passwords. Config stores only hashes, produced
// with guestctl hash-password.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
