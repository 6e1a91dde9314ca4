// Package crypto implements the filecrypt envelope format.
//
// An envelope is a self-contained blob:
//
//	salt (16 bytes) | nonce (12 bytes) | ciphertext | tag (16 bytes)
//
// Encryption uses AES-256-GCM with:
//   - 32-byte key derived from password via PBKDF2
//   - 12-byte random nonce per encryption operation
//   - Authenticated encryption prevents tampering
//
// Key derivation uses PBKDF2-HMAC-SHA256 with:
//   - 16-byte random salt (stored unencrypted in the envelope)
//   - 100,000 iterations
//
// Nothing beyond the password is needed to decrypt an envelope; the salt
// and nonce travel with the ciphertext.
//
// Memory safety:
//   - Use ClearBytes() to zero sensitive data after use
//   - Call Encryptor.Destroy() when done with encryption operations
package crypto
