package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/illarion/filecrypt/internal/core"
	"github.com/illarion/filecrypt/internal/crypto"
)

// DecryptText decrypts a base64 envelope and prints the plaintext.
// The input comes from the argument, from a file (-f), or from stdin.
func DecryptText(text, file, output string, src PasswordSource) {
	if text == "" && file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %s\n", file, err)
			os.Exit(1)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		fmt.Fprintln(os.Stderr, "Paste the encrypted text:")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		if scanner.Scan() {
			text = strings.TrimSpace(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read stdin: %s\n", err)
			os.Exit(1)
		}
	}

	password := ResolvePasswordOrExit(src)
	defer crypto.ClearBytes(password)

	plaintext, err := core.DecryptText(text, password)
	if err != nil {
		HandleError(err)
	}

	fmt.Println(plaintext)

	if output != "" {
		if err := os.WriteFile(output, []byte(plaintext), core.FilePermSecure); err != nil {
			HandleError(fmt.Errorf("failed to write %s: %w", output, err))
		}
		fmt.Fprintf(os.Stderr, "Saved to: %s\n", output)
	}
}
