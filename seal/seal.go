// Package seal provides the cryptographic primitives for credentials at
// rest: deterministic key derivation, storage-grade password hashing and
// authenticated encryption of upstream passwords.
//
// Upstream passwords are sealed under a key derived from the owning user's
// proxy password, so the proxy can only recover them while handling a request
// that carries that user's credentials (or a session derived from them).
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades ~250ms of hashing time for resistance to offline
// brute-force if the database leaks.
const bcryptCost = 12

const nonceSize = 12

var (
	// ErrWrongKey is returned when a sealed value cannot be opened with the
	// supplied key.
	ErrWrongKey = errors.New("seal: wrong key")
	// ErrMalformed is returned when a sealed value is not valid base64 or is
	// too short to contain a nonce.
	ErrMalformed = errors.New("seal: malformed sealed value")
)

// KeyHash returns the deterministic hex SHA-256 of a password. It is part of
// a user's identity (same username + same password resolve to the same user)
// and the input to DeriveKey.
func KeyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// DeriveKey derives a 32-byte AES key from a secret string. Deterministic:
// the same secret always yields the same key.
func DeriveKey(secret string) [32]byte {
	return sha256.Sum256([]byte(secret))
}

// HashPassword returns a bcrypt hash suitable for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("seal: hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. Stored values
// from older databases are plain hex SHA-256; those are accepted too so
// existing users can log in and be migrated to bcrypt.
func Verify(password, stored string) bool {
	if isHexSHA256(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(KeyHash(password))) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NeedsRehash reports whether a stored hash predates bcrypt storage and
// should be replaced on the next successful login.
func NeedsRehash(stored string) bool {
	return isHexSHA256(stored)
}

func isHexSHA256(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Encrypt seals plaintext under key with AES-256-GCM. The result is
// base64(nonce || ciphertext) with a random 12-byte nonce.
func Encrypt(plaintext string, key [32]byte) (string, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("seal: nonce: %w", err)
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt. Returns ErrWrongKey when the
// ciphertext does not authenticate under key, ErrMalformed when the input
// cannot possibly be a sealed value.
func Decrypt(sealed string, key [32]byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if len(raw) < nonceSize {
		return "", ErrMalformed
	}
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrWrongKey
	}
	return string(plaintext), nil
}
