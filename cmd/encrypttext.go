package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/illarion/filecrypt/internal/core"
	"github.com/illarion/filecrypt/internal/crypto"
)

// EncryptText encrypts a text string and prints the base64 envelope.
// When text is empty it is read from stdin.
func EncryptText(text, output string, src PasswordSource) {
	if text == "" {
		fmt.Fprintln(os.Stderr, "Reading text from stdin (Ctrl+D to finish)...")
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read stdin: %s\n", err)
			os.Exit(1)
		}
		text = strings.TrimSpace(string(data))
	}

	src.Confirm = true
	password := ResolvePasswordOrExit(src)
	defer crypto.ClearBytes(password)

	encoded, err := core.EncryptText(text, password)
	if err != nil {
		HandleError(err)
	}

	fmt.Println(encoded)

	if output != "" {
		if err := os.WriteFile(output, []byte(encoded+"\n"), core.FilePermSecure); err != nil {
			HandleError(fmt.Errorf("failed to write %s: %w", output, err))
		}
		fmt.Fprintf(os.Stderr, "Saved to: %s\n", output)
	}
}
