package cmd

import (
	"context"
	"fmt"

	"github.com/illarion/filecrypt/internal/core"
	"github.com/illarion/filecrypt/internal/crypto"
)

// Encrypt encrypts a file into an envelope file
func Encrypt(ctx context.Context, file, output string, src PasswordSource, deleteOriginal bool) {
	src.Confirm = true

	password := ResolvePasswordOrExit(src)
	defer crypto.ClearBytes(password)

	outputPath, err := core.EncryptFile(ctx, file, output, password, deleteOriginal)
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Encrypted: %s\n", outputPath)
	if deleteOriginal {
		fmt.Printf("Removed original: %s\n", file)
	}
}
