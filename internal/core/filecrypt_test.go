package core

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/illarion/filecrypt/internal/crypto"
)

func TestEncryptDecryptFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	password := []byte("test123")

	input := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(input, []byte("hello world"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Encrypt with default output naming
	encrypted, err := EncryptFile(ctx, input, "", password, false)
	if err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}
	if encrypted != input+EncryptedSuffix {
		t.Errorf("Unexpected output path: %s", encrypted)
	}

	// Original must still exist
	if _, err := os.Stat(input); err != nil {
		t.Errorf("Original file should still exist: %v", err)
	}

	// Envelope must be at least header + tag bigger than nothing and
	// must not contain the plaintext
	envelope, err := os.ReadFile(encrypted)
	if err != nil {
		t.Fatalf("Failed to read encrypted file: %v", err)
	}
	if len(envelope) < crypto.SaltSize+crypto.NonceSize+crypto.TagSize {
		t.Errorf("Envelope too short: %d bytes", len(envelope))
	}
	if strings.Contains(string(envelope), "hello world") {
		t.Error("Envelope contains plaintext")
	}

	// Decrypt to an explicit output path
	output := filepath.Join(dir, "restored.txt")
	restored, err := DecryptFile(ctx, encrypted, output, password, false)
	if err != nil {
		t.Fatalf("DecryptFile failed: %v", err)
	}
	if restored != output {
		t.Errorf("Unexpected output path: %s", restored)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read decrypted file: %v", err)
	}
	if string(content) != "hello world" {
		t.Errorf("Content mismatch: got %q", content)
	}
}

func TestDecryptFileDefaultNaming(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	password := []byte("test123")

	input := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(input, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	encrypted, err := EncryptFile(ctx, input, "", password, true)
	if err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}

	// --delete-original removed the input, so the default decrypt
	// output (suffix stripped) is free again
	if _, err := os.Stat(input); !os.IsNotExist(err) {
		t.Error("Original file should have been removed")
	}

	restored, err := DecryptFile(ctx, encrypted, "", password, false)
	if err != nil {
		t.Fatalf("DecryptFile failed: %v", err)
	}
	if restored != input {
		t.Errorf("Expected %s, got %s", input, restored)
	}

	// A file without the .encrypted suffix gets .decrypted appended
	plain := filepath.Join(dir, "blob.bin")
	if got := DefaultDecryptOutput(plain); got != plain+DecryptedSuffix {
		t.Errorf("Expected %s, got %s", plain+DecryptedSuffix, got)
	}
}

func TestDecryptFileWrongPassword(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	input := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(input, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	encrypted, err := EncryptFile(ctx, input, "", []byte("right"), false)
	if err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}

	output := filepath.Join(dir, "out.txt")
	if _, err := DecryptFile(ctx, encrypted, output, []byte("wrong"), false); !errors.Is(err, crypto.ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed, got %v", err)
	}

	// No partial output may be left behind
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Failed decrypt left an output file behind")
	}

	// Encrypted input must be kept even with removeEncrypted set
	if _, err := DecryptFile(ctx, encrypted, output, []byte("wrong"), true); !errors.Is(err, crypto.ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed, got %v", err)
	}
	if _, err := os.Stat(encrypted); err != nil {
		t.Errorf("Encrypted file should still exist: %v", err)
	}
}

func TestDecryptFileTruncated(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	short := filepath.Join(dir, "short.encrypted")
	if err := os.WriteFile(short, []byte("too short"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := DecryptFile(ctx, short, "", []byte("test123"), false); !errors.Is(err, crypto.ErrInvalidEnvelope) {
		t.Errorf("Expected ErrInvalidEnvelope, got %v", err)
	}
}

func TestEncryptFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	missing := filepath.Join(dir, "nope.txt")
	if _, err := EncryptFile(ctx, missing, "", []byte("test123"), false); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestEncryptFileOutputEqualsInput(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	input := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(input, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := EncryptFile(ctx, input, input, []byte("test123"), false); !errors.Is(err, ErrSameFile) {
		t.Errorf("Expected ErrSameFile, got %v", err)
	}

	// Input must be untouched
	content, err := os.ReadFile(input)
	if err != nil || string(content) != "hello" {
		t.Errorf("Input file was modified: %q, %v", content, err)
	}
}

func TestEncryptDecryptText(t *testing.T) {
	password := []byte("Secr3tPass!")

	encoded, err := EncryptText("hello world", password)
	if err != nil {
		t.Fatalf("EncryptText failed: %v", err)
	}

	// Must be printable base64 over a full envelope
	envelope, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("Output is not valid base64: %v", err)
	}
	if len(envelope) < crypto.SaltSize+crypto.NonceSize+crypto.TagSize {
		t.Errorf("Envelope too short: %d bytes", len(envelope))
	}

	text, err := DecryptText(encoded, password)
	if err != nil {
		t.Fatalf("DecryptText failed: %v", err)
	}
	if text != "hello world" {
		t.Errorf("Round trip mismatch: got %q", text)
	}

	// Surrounding whitespace from copy-paste is tolerated
	text, err = DecryptText("  "+encoded+"\n", password)
	if err != nil || text != "hello world" {
		t.Errorf("Whitespace-wrapped decrypt failed: %q, %v", text, err)
	}

	if _, err := DecryptText(encoded, []byte("wrong")); !errors.Is(err, crypto.ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed, got %v", err)
	}
}

func TestDecryptTextInvalidInput(t *testing.T) {
	password := []byte("test123")

	if _, err := DecryptText("not base64 at all!!!", password); !errors.Is(err, crypto.ErrInvalidEnvelope) {
		t.Errorf("Expected ErrInvalidEnvelope for bad base64, got %v", err)
	}

	// Valid base64, but decodes to fewer than salt+nonce bytes
	short := base64.StdEncoding.EncodeToString([]byte("short"))
	if _, err := DecryptText(short, password); !errors.Is(err, crypto.ErrInvalidEnvelope) {
		t.Errorf("Expected ErrInvalidEnvelope for short envelope, got %v", err)
	}

	if _, err := DecryptText("", password); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText, got %v", err)
	}
}

func TestEncryptTextEmpty(t *testing.T) {
	if _, err := EncryptText("", []byte("test123")); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText, got %v", err)
	}
}

func TestGeneratePassword(t *testing.T) {
	first, err := GeneratePassword(32)
	if err != nil {
		t.Fatalf("GeneratePassword failed: %v", err)
	}

	// 32 raw bytes encode to 44 base64 characters
	if len(first) != 44 {
		t.Errorf("Expected 44 characters, got %d", len(first))
	}
	raw, err := base64.StdEncoding.DecodeString(first)
	if err != nil {
		t.Fatalf("Password is not valid base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("Expected 32 raw bytes, got %d", len(raw))
	}

	second, err := GeneratePassword(32)
	if err != nil {
		t.Fatalf("GeneratePassword failed: %v", err)
	}
	if first == second {
		t.Error("Two generated passwords are identical")
	}

	// Non-positive lengths fall back to the default
	fallback, err := GeneratePassword(0)
	if err != nil {
		t.Fatalf("GeneratePassword failed: %v", err)
	}
	if len(fallback) != 44 {
		t.Errorf("Expected default length password, got %d characters", len(fallback))
	}
}

func TestWriteFileAtomicNoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	password := []byte("test123")

	input := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(input, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := EncryptFile(ctx, input, "", password, false); err != nil {
		t.Fatalf("EncryptFile failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".filecrypt-") {
			t.Errorf("Temp file left behind: %s", entry.Name())
		}
	}
}
