// Package msgcrypt implements passphrase-based message encryption for
// encrypted-mode mints. The passphrase never appears in the metadata; only
// the ciphertext and its public key-derivation parameters do, so a lost
// passphrase means a permanently unreadable message.
package msgcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PayloadVersion tags the encryption scheme in the metadata.
	PayloadVersion = "v1"

	// Iterations is the PBKDF2 round count for new payloads. Stored with
	// each payload, so it can grow without breaking old ciphertexts.
	Iterations = 210_000

	saltSize  = 16
	nonceSize = 12
	keySize   = 32
)

// ErrUnsupportedVersion is returned when a payload declares a scheme this
// build does not implement.
var ErrUnsupportedVersion = errors.New("unsupported encryption version")

// EncryptedPayload is the on-chain shape of an encrypted message. All byte
// fields are base64; CipherText may have been split into 64-character
// segments by the metadata layer, so readers must join before decoding.
type EncryptedPayload struct {
	Version    string
	CipherText []string
	Nonce      string
	Salt       string
	Iterations int
}

func deriveKey(passphrase string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, iterations, keySize, sha256.New)
}

// Encrypt seals plaintext under a key derived from passphrase with
// PBKDF2-SHA256 and AES-256-GCM.
func Encrypt(plaintext, passphrase string) (*EncryptedPayload, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := newAEAD(deriveKey(passphrase, salt, Iterations))
	if err != nil {
		return nil, err
	}
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)

	return &EncryptedPayload{
		Version:    PayloadVersion,
		CipherText: []string{base64.StdEncoding.EncodeToString(sealed)},
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Iterations: Iterations,
	}, nil
}

// Decrypt opens a payload with the same passphrase that sealed it. A wrong
// passphrase or tampered ciphertext fails authentication.
func Decrypt(payload *EncryptedPayload, passphrase string) (string, error) {
	if payload == nil {
		return "", errors.New("nil payload")
	}
	if payload.Version != PayloadVersion {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, payload.Version)
	}

	salt, err := base64.StdEncoding.DecodeString(payload.Salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(payload.Nonce)
	if err != nil {
		return "", fmt.Errorf("decode nonce: %w", err)
	}
	sealed, err := base64.StdEncoding.DecodeString(strings.Join(payload.CipherText, ""))
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	if len(nonce) != nonceSize {
		return "", fmt.Errorf("nonce is %d bytes, want %d", len(nonce), nonceSize)
	}

	aead, err := newAEAD(deriveKey(passphrase, salt, payload.Iterations))
	if err != nil {
		return "", err
	}
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("open ciphertext: %w", err)
	}
	return string(plain), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return aead, nil
}
