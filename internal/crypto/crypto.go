package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	SaltSize   = 16     // Salt size in bytes
	KeySize    = 32     // AES-256 key size
	NonceSize  = 12     // GCM nonce size
	TagSize    = 16     // GCM authentication tag size
	Iterations = 100000 // PBKDF2 iterations

	// headerSize is the unencrypted prefix of every envelope
	headerSize = SaltSize + NonceSize
)

var (
	ErrInvalidEnvelope = errors.New("invalid envelope")
	ErrAuthFailed      = errors.New("authentication failed")
)

// DeriveKey derives a 32-byte encryption key from a password and salt
// using PBKDF2-HMAC-SHA256. Deterministic: the same inputs always yield
// the same key.
func DeriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New)
}

// KDF handles key derivation from passwords
type KDF struct {
	Salt       []byte
	Iterations int
}

// NewKDF creates a new KDF with a random salt
func NewKDF() (*KDF, error) {
	salt, err := GenerateRandom(SaltSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	return &KDF{
		Salt:       salt,
		Iterations: Iterations,
	}, nil
}

// DeriveKey derives an encryption key from a password
func (k *KDF) DeriveKey(password []byte) []byte {
	return DeriveKey(password, k.Salt, k.Iterations)
}

// Encryptor provides authenticated encryption
type Encryptor struct {
	key []byte
}

// NewEncryptor creates a new encryptor with the given key
func NewEncryptor(key []byte) *Encryptor {
	return &Encryptor{
		key: key,
	}
}

// Encrypt encrypts plaintext using AES-256-GCM and returns
// nonce || ciphertext || tag.
func (e *Encryptor) Encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Generate random nonce
	nonce, err := GenerateRandom(NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Encrypt and authenticate
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	// Prepend nonce to ciphertext
	result := make([]byte, NonceSize+len(ciphertext))
	copy(result, nonce)
	copy(result[NonceSize:], ciphertext)

	return result, nil
}

// Decrypt decrypts nonce || ciphertext || tag using AES-256-GCM
func (e *Encryptor) Decrypt(data []byte) ([]byte, error) {
	if len(data) < NonceSize {
		return nil, ErrInvalidEnvelope
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Extract nonce
	nonce := data[:NonceSize]
	data = data[NonceSize:]

	// Decrypt and verify. GCM fails closed on a bad or truncated tag,
	// so no plaintext is ever released on failure.
	plaintext, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}

	return plaintext, nil
}

// Destroy clears the encryptor's key from memory
func (e *Encryptor) Destroy() {
	ClearBytes(e.key)
}

// Encrypt encrypts plaintext with a key derived from password and returns
// a self-contained envelope: salt || nonce || ciphertext || tag.
// Salt and nonce are drawn fresh for every call, so encrypting the same
// input twice yields different envelopes.
func Encrypt(plaintext, password []byte) ([]byte, error) {
	kdf, err := NewKDF()
	if err != nil {
		return nil, err
	}

	key := kdf.DeriveKey(password)
	defer ClearBytes(key)

	enc := NewEncryptor(key)
	defer enc.Destroy()

	sealed, err := enc.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, SaltSize+len(sealed))
	copy(envelope, kdf.Salt)
	copy(envelope[SaltSize:], sealed)

	return envelope, nil
}

// Decrypt opens an envelope produced by Encrypt using the same password.
// Returns ErrInvalidEnvelope if the envelope is too short to contain a
// salt and nonce, and ErrAuthFailed if the authentication tag does not
// verify (wrong password or tampered data, indistinguishable).
func Decrypt(envelope, password []byte) ([]byte, error) {
	if len(envelope) < headerSize {
		return nil, ErrInvalidEnvelope
	}

	kdf := &KDF{
		Salt:       envelope[:SaltSize],
		Iterations: Iterations,
	}

	key := kdf.DeriveKey(password)
	defer ClearBytes(key)

	enc := NewEncryptor(key)
	defer enc.Destroy()

	return enc.Decrypt(envelope[SaltSize:])
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ConstantTimeCompare performs a constant-time comparison of two byte slices
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// GenerateRandom generates n random bytes
func GenerateRandom(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return b, nil
}
