package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from a plaintext password.
// The cost parameter intentionally makes hashing slow to resist
// brute-force attacks.
//
// The returned hash embeds its own salt and cost, so no additional
// bookkeeping is required for verification.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// A mismatch is an ordinary false, never an error surfaced to callers.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
