package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/illarion/filecrypt/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encrypt":
		runEncrypt(ctx, os.Args[2:])
	case "decrypt":
		runDecrypt(ctx, os.Args[2:])
	case "encrypt-text":
		runEncryptText(ctx, os.Args[2:])
	case "decrypt-text":
		runDecryptText(ctx, os.Args[2:])
	case "generate-password":
		runGeneratePassword(ctx, os.Args[2:])
	case "keyring":
		runKeyring(ctx, os.Args[2:])
	case "completion":
		runCompletion(ctx, os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runEncrypt(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	outputShort := fs.String("o", "", "Output file (default: <file>.encrypted)")
	outputLong := fs.String("output", "", "Output file (default: <file>.encrypted)")
	passwordShort := fs.String("p", "", "Password (prefer the prompt or the keyring)")
	passwordLong := fs.String("password", "", "Password (prefer the prompt or the keyring)")
	genShort := fs.Bool("g", false, "Generate a random password")
	genLong := fs.Bool("generate-password", false, "Generate a random password")
	keyringShort := fs.String("k", "", "Keyring profile to take the password from")
	keyringLong := fs.String("keyring", "", "Keyring profile to take the password from")
	deleteOriginal := fs.Bool("delete-original", false, "Remove original file after encryption")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: filecrypt encrypt [flags] <file>")
		os.Exit(1)
	}

	src := cmd.PasswordSource{
		Flag:     firstOf(*passwordShort, *passwordLong),
		Profile:  firstOf(*keyringShort, *keyringLong),
		Generate: *genShort || *genLong,
	}
	cmd.Encrypt(ctx, fs.Arg(0), firstOf(*outputShort, *outputLong), src, *deleteOriginal)
}

func runDecrypt(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	outputShort := fs.String("o", "", "Output file (default: <file> without .encrypted)")
	outputLong := fs.String("output", "", "Output file (default: <file> without .encrypted)")
	passwordShort := fs.String("p", "", "Password (prefer the prompt or the keyring)")
	passwordLong := fs.String("password", "", "Password (prefer the prompt or the keyring)")
	keyringShort := fs.String("k", "", "Keyring profile to take the password from")
	keyringLong := fs.String("keyring", "", "Keyring profile to take the password from")
	deleteEncrypted := fs.Bool("delete-encrypted", false, "Remove encrypted file after decryption")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: filecrypt decrypt [flags] <file>")
		os.Exit(1)
	}

	src := cmd.PasswordSource{
		Flag:    firstOf(*passwordShort, *passwordLong),
		Profile: firstOf(*keyringShort, *keyringLong),
	}
	cmd.Decrypt(ctx, fs.Arg(0), firstOf(*outputShort, *outputLong), src, *deleteEncrypted)
}

func runEncryptText(_ context.Context, args []string) {
	fs := flag.NewFlagSet("encrypt-text", flag.ExitOnError)
	outputShort := fs.String("o", "", "File to save the encrypted text to")
	outputLong := fs.String("output", "", "File to save the encrypted text to")
	passwordShort := fs.String("p", "", "Password (prefer the prompt or the keyring)")
	passwordLong := fs.String("password", "", "Password (prefer the prompt or the keyring)")
	genShort := fs.Bool("g", false, "Generate a random password")
	genLong := fs.Bool("generate-password", false, "Generate a random password")
	keyringShort := fs.String("k", "", "Keyring profile to take the password from")
	keyringLong := fs.String("keyring", "", "Keyring profile to take the password from")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	src := cmd.PasswordSource{
		Flag:     firstOf(*passwordShort, *passwordLong),
		Profile:  firstOf(*keyringShort, *keyringLong),
		Generate: *genShort || *genLong,
	}
	cmd.EncryptText(fs.Arg(0), firstOf(*outputShort, *outputLong), src)
}

func runDecryptText(_ context.Context, args []string) {
	fs := flag.NewFlagSet("decrypt-text", flag.ExitOnError)
	fileShort := fs.String("f", "", "Read the encrypted text from a file")
	fileLong := fs.String("file", "", "Read the encrypted text from a file")
	outputShort := fs.String("o", "", "File to save the decrypted text to")
	outputLong := fs.String("output", "", "File to save the decrypted text to")
	passwordShort := fs.String("p", "", "Password (prefer the prompt or the keyring)")
	passwordLong := fs.String("password", "", "Password (prefer the prompt or the keyring)")
	keyringShort := fs.String("k", "", "Keyring profile to take the password from")
	keyringLong := fs.String("keyring", "", "Keyring profile to take the password from")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	src := cmd.PasswordSource{
		Flag:    firstOf(*passwordShort, *passwordLong),
		Profile: firstOf(*keyringShort, *keyringLong),
	}
	cmd.DecryptText(fs.Arg(0), firstOf(*fileShort, *fileLong), firstOf(*outputShort, *outputLong), src)
}

func runGeneratePassword(_ context.Context, args []string) {
	fs := flag.NewFlagSet("generate-password", flag.ExitOnError)
	lengthShort := fs.Int("l", 32, "Password length in random bytes")
	lengthLong := fs.Int("length", 32, "Password length in random bytes")
	outputShort := fs.String("o", "", "File to save the password to")
	outputLong := fs.String("output", "", "File to save the password to")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	length := *lengthShort
	if *lengthLong != 32 {
		length = *lengthLong
	}
	cmd.GeneratePassword(length, firstOf(*outputShort, *outputLong))
}

func runKeyring(_ context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: filecrypt keyring <save|rm|status> <profile>")
		os.Exit(1)
	}

	profile := args[1]
	switch args[0] {
	case "save":
		cmd.KeyringSave(profile)
	case "rm", "delete":
		cmd.KeyringDelete(profile)
	case "status":
		cmd.KeyringStatus(profile)
	default:
		fmt.Fprintf(os.Stderr, "Unknown keyring subcommand: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: filecrypt keyring <save|rm|status> <profile>")
		os.Exit(1)
	}
}

func runCompletion(_ context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: filecrypt completion <bash|zsh|fish>")
		os.Exit(1)
	}
	cmd.Completion(args[0])
}

// firstOf returns the first non-empty string, so short and long flag
// variants can share one value
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printUsage() {
	fmt.Println("filecrypt - Encrypt and decrypt files and text with a password")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  filecrypt <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  encrypt            Encrypt a file (AES-256-GCM)")
	fmt.Println("  decrypt            Decrypt a file")
	fmt.Println("  encrypt-text       Encrypt a text string to base64")
	fmt.Println("  decrypt-text       Decrypt a base64 text string")
	fmt.Println("  generate-password  Generate a random password")
	fmt.Println("  keyring            Manage passwords in the OS keyring")
	fmt.Println("  completion         Generate shell completions")
	fmt.Println("  help               Show help for a command")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  filecrypt encrypt notes.txt                  # Writes notes.txt.encrypted")
	fmt.Println("  filecrypt decrypt notes.txt.encrypted        # Restores notes.txt")
	fmt.Println("  filecrypt encrypt-text \"launch code is 42\"   # Prints base64 ciphertext")
	fmt.Println("  filecrypt generate-password                  # Prints a random password")
	fmt.Println()
	fmt.Println("The password can come from a prompt, the -p flag, a keyring profile")
	fmt.Println("(-k), or the FILECRYPT_PASSWORD environment variable.")
	fmt.Println()
	fmt.Println("Use 'filecrypt help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "encrypt":
		fmt.Println("filecrypt encrypt [flags] <file>")
		fmt.Println()
		fmt.Println("Encrypts a file with AES-256-GCM under a password-derived key.")
		fmt.Println("The output is a self-contained blob; only the password is needed")
		fmt.Println("to decrypt it later. By default the output is <file>.encrypted")
		fmt.Println("next to the original.")
		fmt.Println()
		fmt.Println("Without -p, -k or FILECRYPT_PASSWORD the password is prompted")
		fmt.Println("twice, without echo.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -o, --output             Output file (default: <file>.encrypted)")
		fmt.Println("  -p, --password           Password on the command line (visible in")
		fmt.Println("                           shell history and process lists; avoid)")
		fmt.Println("  -g, --generate-password  Generate a random password and print it")
		fmt.Println("  -k, --keyring            Take the password from a keyring profile")
		fmt.Println("      --delete-original    Remove the original file after encryption")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  filecrypt encrypt notes.txt")
		fmt.Println("  filecrypt encrypt notes.txt -o secret.bin")
		fmt.Println("  filecrypt encrypt notes.txt --generate-password")
		fmt.Println("  filecrypt encrypt notes.txt --delete-original")
		fmt.Println("  filecrypt encrypt notes.txt -k work")
	case "decrypt":
		fmt.Println("filecrypt decrypt [flags] <file>")
		fmt.Println()
		fmt.Println("Decrypts a file produced by 'filecrypt encrypt'.")
		fmt.Println("By default a trailing .encrypted is stripped from the file name;")
		fmt.Println("otherwise .decrypted is appended.")
		fmt.Println()
		fmt.Println("A wrong password and a corrupted file are indistinguishable:")
		fmt.Println("both fail the authentication check and nothing is written.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -o, --output            Output file")
		fmt.Println("  -p, --password          Password on the command line (avoid)")
		fmt.Println("  -k, --keyring           Take the password from a keyring profile")
		fmt.Println("      --delete-encrypted  Remove the encrypted file after decryption")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  filecrypt decrypt notes.txt.encrypted")
		fmt.Println("  filecrypt decrypt secret.bin -o notes.txt")
	case "encrypt-text":
		fmt.Println("filecrypt encrypt-text [flags] [text]")
		fmt.Println()
		fmt.Println("Encrypts a text string and prints the result as base64, safe to")
		fmt.Println("paste into chats, notes or config files. Without a text argument")
		fmt.Println("the text is read from stdin.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -o, --output             Also save the encrypted text to a file")
		fmt.Println("  -p, --password           Password on the command line (avoid)")
		fmt.Println("  -g, --generate-password  Generate a random password and print it")
		fmt.Println("  -k, --keyring            Take the password from a keyring profile")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  filecrypt encrypt-text \"my secret\"")
		fmt.Println("  filecrypt encrypt-text --generate-password -o secret.txt")
		fmt.Println("  cat secret.txt | filecrypt encrypt-text")
	case "decrypt-text":
		fmt.Println("filecrypt decrypt-text [flags] [text]")
		fmt.Println()
		fmt.Println("Decrypts a base64 string produced by 'filecrypt encrypt-text'.")
		fmt.Println("The input comes from the argument, from a file (-f), or from stdin.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -f, --file      Read the encrypted text from a file")
		fmt.Println("  -o, --output    Also save the decrypted text to a file")
		fmt.Println("  -p, --password  Password on the command line (avoid)")
		fmt.Println("  -k, --keyring   Take the password from a keyring profile")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  filecrypt decrypt-text \"pFh3...base64...\"")
		fmt.Println("  filecrypt decrypt-text -f secret.txt")
	case "generate-password":
		fmt.Println("filecrypt generate-password [flags]")
		fmt.Println()
		fmt.Println("Generates a random password from the system's secure random")
		fmt.Println("source and prints it base64-encoded. The length is the number of")
		fmt.Println("random bytes, not characters; the default 32 bytes print as 44")
		fmt.Println("characters.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -l, --length  Password length in random bytes (default 32)")
		fmt.Println("  -o, --output  Save the password to a file")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  filecrypt generate-password")
		fmt.Println("  filecrypt generate-password --length 64")
	case "keyring":
		fmt.Println("filecrypt keyring <save|rm|status> <profile>")
		fmt.Println()
		fmt.Println("Stores passwords in the OS keyring under profile names, so they")
		fmt.Println("don't have to be retyped. Use a stored password with the")
		fmt.Println("-k/--keyring flag on encrypt and decrypt commands.")
		fmt.Println()
		fmt.Println("Subcommands:")
		fmt.Println("  save    Prompt for a password and store it under the profile")
		fmt.Println("  rm      Remove the profile's password")
		fmt.Println("  status  Check whether a password is stored for the profile")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  filecrypt keyring save work")
		fmt.Println("  filecrypt encrypt notes.txt -k work")
		fmt.Println("  filecrypt keyring rm work")
	case "completion":
		fmt.Println("filecrypt completion <bash|zsh|fish>")
		fmt.Println()
		fmt.Println("Outputs shell completion script for the specified shell.")
		fmt.Println()
		fmt.Println("Setup:")
		fmt.Println("  # Bash - add to ~/.bashrc")
		fmt.Println("  eval \"$(filecrypt completion bash)\"")
		fmt.Println()
		fmt.Println("  # Zsh - add to ~/.zshrc")
		fmt.Println("  eval \"$(filecrypt completion zsh)\"")
		fmt.Println()
		fmt.Println("  # Fish - add to ~/.config/fish/config.fish")
		fmt.Println("  filecrypt completion fish | source")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
