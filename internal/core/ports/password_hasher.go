package ports

// PasswordHasher hashes credentials one-way and verifies them in constant
// time. Hash salts every call, so two digests of the same plaintext differ.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest
	// fails closed: the result is false, never an error or panic.
	Verify(plaintext, digest string) bool
}
