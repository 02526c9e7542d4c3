// Package hash implements the password hasher port on bcrypt.
package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt hashes passwords with bcrypt at the configured cost. The salt is
// generated per call and embedded in the digest, so identical plaintexts
// produce different digests.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher at cost. Costs outside bcrypt's valid range
// fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. bcrypt's comparison is
// constant-time; a malformed digest simply compares false.
func (b *Bcrypt) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
