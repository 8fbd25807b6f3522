package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// encryptionPassphrase protects the user registry at rest. It ships inside
// the binary, so the encryption is obfuscation against casual inspection,
// not a real secret; per-install key generation would fix this.
const encryptionPassphrase = "FamLedger-Secure-2025"

const (
	keyIterations = 4096
	keyLength     = 32
)

// registryKey derives the AES-256 key from the fixed passphrase.
func registryKey() []byte {
	return pbkdf2.Key([]byte(encryptionPassphrase), []byte("famledger-registry"), keyIterations, keyLength, sha256.New)
}

// encrypt seals plaintext with AES-256-GCM and returns base64(nonce || ciphertext).
func encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(registryKey())
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// decrypt reverses encrypt. Any tampering or key mismatch fails the GCM tag
// check and returns an error.
func decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}

	block, err := aes.NewCipher(registryKey())
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("registry ciphertext too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt registry: %w", err)
	}
	return plaintext, nil
}
