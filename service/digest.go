package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// digest computes the stored form of a password: hex-encoded sha256 of the
// plaintext. Unsalted and deterministic, which is a known-weak scheme kept
// for compatibility with the existing credential rows.
// TODO: migrate stored hashes to bcrypt and rehash on next successful login.
func digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
