package cmd

import (
	"context"
	"fmt"

	"github.com/illarion/filecrypt/internal/core"
	"github.com/illarion/filecrypt/internal/crypto"
)

// Decrypt decrypts an envelope file
func Decrypt(ctx context.Context, file, output string, src PasswordSource, deleteEncrypted bool) {
	password := ResolvePasswordOrExit(src)
	defer crypto.ClearBytes(password)

	outputPath, err := core.DecryptFile(ctx, file, output, password, deleteEncrypted)
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Decrypted: %s\n", outputPath)
	if deleteEncrypted {
		fmt.Printf("Removed encrypted file: %s\n", file)
	}
}
