package core

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/illarion/filecrypt/internal/crypto"
)

const (
	EncryptedSuffix = ".encrypted"
	DecryptedSuffix = ".decrypted"

	FilePermSecure = 0600 // File: owner rw only

	DefaultPasswordLength = 32
)

var (
	ErrSameFile  = errors.New("output path is the same as input path")
	ErrEmptyText = errors.New("text is empty")
)

// DefaultEncryptOutput returns the output path used by EncryptFile when
// none is given: the input path with ".encrypted" appended.
func DefaultEncryptOutput(path string) string {
	return path + EncryptedSuffix
}

// DefaultDecryptOutput returns the output path used by DecryptFile when
// none is given: the input path with a trailing ".encrypted" removed, or
// ".decrypted" appended when there is no such suffix to strip.
func DefaultDecryptOutput(path string) string {
	if strings.HasSuffix(path, EncryptedSuffix) {
		return strings.TrimSuffix(path, EncryptedSuffix)
	}
	return path + DecryptedSuffix
}

// EncryptFile encrypts a file into an envelope file. The whole file is
// read into memory, encrypted, and written to output (or the default
// output path when output is empty). When removeOriginal is set the
// input file is removed after the output has been written.
// Returns the output path.
func EncryptFile(ctx context.Context, path, output string, password []byte, removeOriginal bool) (string, error) {
	if output == "" {
		output = DefaultEncryptOutput(path)
	}

	plaintext, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer crypto.ClearBytes(plaintext)

	if err := checkOutputPath(path, output); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	envelope, err := crypto.Encrypt(plaintext, password)
	if err != nil {
		return "", err
	}

	if err := writeFileAtomic(output, envelope); err != nil {
		return "", err
	}

	if removeOriginal {
		if err := os.Remove(path); err != nil {
			return output, fmt.Errorf("encrypted, but failed to remove original: %w", err)
		}
	}

	return output, nil
}

// DecryptFile decrypts an envelope file. When removeEncrypted is set the
// input file is removed after the output has been written.
// Returns the output path.
func DecryptFile(ctx context.Context, path, output string, password []byte, removeEncrypted bool) (string, error) {
	if output == "" {
		output = DefaultDecryptOutput(path)
	}

	envelope, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := checkOutputPath(path, output); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	plaintext, err := crypto.Decrypt(envelope, password)
	if err != nil {
		return "", err
	}
	defer crypto.ClearBytes(plaintext)

	if err := writeFileAtomic(output, plaintext); err != nil {
		return "", err
	}

	if removeEncrypted {
		if err := os.Remove(path); err != nil {
			return output, fmt.Errorf("decrypted, but failed to remove encrypted file: %w", err)
		}
	}

	return output, nil
}

// EncryptText encrypts a text string and returns the envelope encoded as
// base64 for textual transport.
func EncryptText(text string, password []byte) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}

	plaintext := []byte(text)
	defer crypto.ClearBytes(plaintext)

	envelope, err := crypto.Encrypt(plaintext, password)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// DecryptText decrypts a base64-encoded envelope produced by EncryptText
func DecryptText(encoded string, password []byte) (string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return "", ErrEmptyText
	}

	envelope, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: not valid base64", crypto.ErrInvalidEnvelope)
	}

	plaintext, err := crypto.Decrypt(envelope, password)
	if err != nil {
		return "", err
	}
	defer crypto.ClearBytes(plaintext)

	return string(plaintext), nil
}

// GeneratePassword generates a random password of length random bytes,
// returned base64-encoded for display and reuse.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	secret, err := crypto.GenerateRandom(length)
	if err != nil {
		return "", err
	}
	defer crypto.ClearBytes(secret)

	return base64.StdEncoding.EncodeToString(secret), nil
}

// checkOutputPath rejects an output that would clobber the input
func checkOutputPath(input, output string) error {
	absIn, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", input, err)
	}
	absOut, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", output, err)
	}
	if absIn == absOut {
		return fmt.Errorf("%w: %s", ErrSameFile, output)
	}
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory and a rename, so a failure never leaves a partial output
// file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".filecrypt-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if err := tmp.Chmod(FilePermSecure); err != nil {
		cleanup()
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close output: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
