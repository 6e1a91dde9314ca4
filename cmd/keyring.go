package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/filecrypt/internal/core"
	"github.com/illarion/filecrypt/internal/crypto"
	"github.com/illarion/filecrypt/internal/keyring"
)

// KeyringSave stores a password in the OS keyring under a profile name
func KeyringSave(profile string) {
	// Prompt twice to guard against typos: a mistyped password here
	// would silently encrypt everything under the wrong secret
	password, err := core.ReadPasswordConfirm()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer crypto.ClearBytes(password)

	if err := keyring.SavePassword(profile, string(password)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save to keyring: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Password saved to keyring as %q\n", profile)
	fmt.Printf("Use it with: filecrypt encrypt -k %s <file>\n", profile)
}

// KeyringDelete removes a profile's password from the OS keyring
func KeyringDelete(profile string) {
	if err := keyring.DeletePassword(profile); err != nil {
		fmt.Printf("No password stored for profile %q\n", profile)
		return
	}

	fmt.Printf("Password removed for profile %q\n", profile)
}

// KeyringStatus checks if a password is stored for a profile
func KeyringStatus(profile string) {
	if keyring.HasPassword(profile) {
		fmt.Printf("Profile %q: password stored in keyring\n", profile)
	} else {
		fmt.Printf("Profile %q: no password stored\n", profile)
	}
}
