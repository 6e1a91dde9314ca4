package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/illarion/filecrypt/internal/core"
	"github.com/illarion/filecrypt/internal/crypto"
	"github.com/illarion/filecrypt/internal/keyring"
)

// PasswordSource describes where a command should take its password from.
// Resolution order: explicit flag, keyring profile, environment variable,
// interactive prompt.
type PasswordSource struct {
	// Flag is the value of -p/--password, if given
	Flag string
	// Profile is the keyring profile named by -k/--keyring, if given
	Profile string
	// Confirm prompts twice when falling back to the terminal
	Confirm bool
	// Generate creates a random password instead of asking for one
	Generate bool
}

// ResolvePassword returns the password for a command.
// The caller is responsible for calling crypto.ClearBytes on the result.
func ResolvePassword(src PasswordSource) ([]byte, error) {
	if src.Generate {
		password, err := core.GeneratePassword(core.DefaultPasswordLength)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Generated password: %s\n", password)
		fmt.Println("Store this password somewhere safe - without it the data cannot be recovered")
		return []byte(password), nil
	}

	if src.Flag != "" {
		return []byte(src.Flag), nil
	}

	if src.Profile != "" {
		password, err := keyring.GetPassword(src.Profile)
		if err != nil {
			return nil, fmt.Errorf("no password in keyring for profile %q: %w", src.Profile, err)
		}
		return []byte(password), nil
	}

	if password := core.GetPasswordFromEnv(); password != nil {
		return password, nil
	}

	if src.Confirm {
		return core.ReadPasswordConfirm()
	}
	return core.ReadPassword("Enter password: ")
}

// ResolvePasswordOrExit is like ResolvePassword but exits on error
func ResolvePasswordOrExit(src PasswordSource) []byte {
	password, err := ResolvePassword(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return password
}

// HandleError reports an error to the user and exits.
// Authentication failures get one generic message: wrong password and
// tampered data are deliberately not distinguished.
func HandleError(err error) {
	switch {
	case errors.Is(err, crypto.ErrAuthFailed):
		fmt.Fprintf(os.Stderr, "Error: decryption failed\n")
		fmt.Fprintf(os.Stderr, "Check that the password is correct and the data is not corrupted\n")
	case errors.Is(err, crypto.ErrInvalidEnvelope):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "The input does not look like filecrypt output\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
