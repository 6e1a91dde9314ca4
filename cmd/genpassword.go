package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/filecrypt/internal/core"
)

// GeneratePassword generates a random password and prints it
func GeneratePassword(length int, output string) {
	password, err := core.GeneratePassword(length)
	if err != nil {
		HandleError(err)
	}

	fmt.Println(password)

	if output != "" {
		if err := os.WriteFile(output, []byte(password+"\n"), core.FilePermSecure); err != nil {
			HandleError(fmt.Errorf("failed to write %s: %w", output, err))
		}
		fmt.Fprintf(os.Stderr, "Saved to: %s\n", output)
	}
}
