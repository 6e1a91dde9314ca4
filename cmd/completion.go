package cmd

import (
	"fmt"
	"os"
)

// Completion outputs shell completion scripts
func Completion(shell string) {
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	case "fish":
		fmt.Print(fishCompletion)
	default:
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\nSupported: bash, zsh, fish\n", shell)
		os.Exit(1)
	}
}

const bashCompletion = `_filecrypt() {
    local cur prev words cword
    _init_completion || return

    local commands="encrypt decrypt encrypt-text decrypt-text generate-password keyring help completion"

    if [[ $cword -eq 1 ]]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
        return
    fi

    local cmd="${words[1]}"
    case "$cmd" in
        encrypt)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=($(compgen -W "-o --output -p --password -g --generate-password -k --keyring --delete-original" -- "$cur"))
            else
                _filedir
            fi
            ;;
        decrypt)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=($(compgen -W "-o --output -p --password -k --keyring --delete-encrypted" -- "$cur"))
            else
                _filedir
            fi
            ;;
        encrypt-text)
            COMPREPLY=($(compgen -W "-o --output -p --password -g --generate-password -k --keyring" -- "$cur"))
            ;;
        decrypt-text)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=($(compgen -W "-f --file -o --output -p --password -k --keyring" -- "$cur"))
            elif [[ "$prev" == "-f" || "$prev" == "--file" ]]; then
                _filedir
            fi
            ;;
        generate-password)
            COMPREPLY=($(compgen -W "-l --length -o --output" -- "$cur"))
            ;;
        keyring)
            COMPREPLY=($(compgen -W "save rm status" -- "$cur"))
            ;;
        help)
            COMPREPLY=($(compgen -W "$commands" -- "$cur"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
            ;;
    esac
}

complete -F _filecrypt filecrypt
`

const zshCompletion = `#compdef filecrypt

_filecrypt() {
    local -a commands
    commands=(
        'encrypt:Encrypt a file'
        'decrypt:Decrypt a file'
        'encrypt-text:Encrypt a text string'
        'decrypt-text:Decrypt a text string'
        'generate-password:Generate a random password'
        'keyring:Manage passwords in the OS keyring'
        'help:Show help for a command'
        'completion:Generate shell completions'
    )

    _arguments -C \
        '1: :->command' \
        '*: :->args'

    case "$state" in
        command)
            _describe -t commands 'filecrypt commands' commands
            ;;
        args)
            case "${words[2]}" in
                encrypt)
                    _arguments \
                        '(-o --output)'{-o,--output}'[Output file]:file:_files' \
                        '(-p --password)'{-p,--password}'[Password]' \
                        '(-g --generate-password)'{-g,--generate-password}'[Generate a random password]' \
                        '(-k --keyring)'{-k,--keyring}'[Keyring profile]' \
                        '--delete-original[Remove original file after encryption]' \
                        '*:file:_files'
                    ;;
                decrypt)
                    _arguments \
                        '(-o --output)'{-o,--output}'[Output file]:file:_files' \
                        '(-p --password)'{-p,--password}'[Password]' \
                        '(-k --keyring)'{-k,--keyring}'[Keyring profile]' \
                        '--delete-encrypted[Remove encrypted file after decryption]' \
                        '*:file:_files'
                    ;;
                encrypt-text)
                    _arguments \
                        '(-o --output)'{-o,--output}'[Output file]:file:_files' \
                        '(-p --password)'{-p,--password}'[Password]' \
                        '(-g --generate-password)'{-g,--generate-password}'[Generate a random password]' \
                        '(-k --keyring)'{-k,--keyring}'[Keyring profile]'
                    ;;
                decrypt-text)
                    _arguments \
                        '(-f --file)'{-f,--file}'[Read encrypted text from file]:file:_files' \
                        '(-o --output)'{-o,--output}'[Output file]:file:_files' \
                        '(-p --password)'{-p,--password}'[Password]' \
                        '(-k --keyring)'{-k,--keyring}'[Keyring profile]'
                    ;;
                generate-password)
                    _arguments \
                        '(-l --length)'{-l,--length}'[Password length in bytes]' \
                        '(-o --output)'{-o,--output}'[Output file]:file:_files'
                    ;;
                keyring)
                    local -a subcommands
                    subcommands=(
                        'save:Store a password under a profile name'
                        'rm:Remove a stored password'
                        'status:Check whether a password is stored'
                    )
                    _describe -t subcommands 'keyring subcommands' subcommands
                    ;;
                help)
                    _describe -t commands 'filecrypt commands' commands
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_filecrypt
`

const fishCompletion = `complete -c filecrypt -f

set -l commands encrypt decrypt encrypt-text decrypt-text generate-password keyring help completion

complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a encrypt -d 'Encrypt a file'
complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a decrypt -d 'Decrypt a file'
complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a encrypt-text -d 'Encrypt a text string'
complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a decrypt-text -d 'Decrypt a text string'
complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a generate-password -d 'Generate a random password'
complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a keyring -d 'Manage passwords in the OS keyring'
complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a help -d 'Show help for a command'
complete -c filecrypt -n "not __fish_seen_subcommand_from $commands" -a completion -d 'Generate shell completions'

complete -c filecrypt -n "__fish_seen_subcommand_from encrypt" -F
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt" -s o -l output -d 'Output file' -r -F
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt" -s p -l password -d 'Password' -r
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt" -s g -l generate-password -d 'Generate a random password'
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt" -s k -l keyring -d 'Keyring profile' -r
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt" -l delete-original -d 'Remove original file after encryption'

complete -c filecrypt -n "__fish_seen_subcommand_from decrypt" -F
complete -c filecrypt -n "__fish_seen_subcommand_from decrypt" -s o -l output -d 'Output file' -r -F
complete -c filecrypt -n "__fish_seen_subcommand_from decrypt" -s p -l password -d 'Password' -r
complete -c filecrypt -n "__fish_seen_subcommand_from decrypt" -s k -l keyring -d 'Keyring profile' -r
complete -c filecrypt -n "__fish_seen_subcommand_from decrypt" -l delete-encrypted -d 'Remove encrypted file after decryption'

complete -c filecrypt -n "__fish_seen_subcommand_from encrypt-text" -s o -l output -d 'Output file' -r -F
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt-text" -s p -l password -d 'Password' -r
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt-text" -s g -l generate-password -d 'Generate a random password'
complete -c filecrypt -n "__fish_seen_subcommand_from encrypt-text" -s k -l keyring -d 'Keyring profile' -r

complete -c filecrypt -n "__fish_seen_subcommand_from decrypt-text" -s f -l file -d 'Read encrypted text from file' -r -F
complete -c filecrypt -n "__fish_seen_subcommand_from decrypt-text" -s o -l output -d 'Output file' -r -F
complete -c filecrypt -n "__fish_seen_subcommand_from decrypt-text" -s p -l password -d 'Password' -r
complete -c filecrypt -n "__fish_seen_subcommand_from decrypt-text" -s k -l keyring -d 'Keyring profile' -r

complete -c filecrypt -n "__fish_seen_subcommand_from generate-password" -s l -l length -d 'Password length in bytes' -r
complete -c filecrypt -n "__fish_seen_subcommand_from generate-password" -s o -l output -d 'Output file' -r -F

complete -c filecrypt -n "__fish_seen_subcommand_from keyring" -a 'save rm status'

complete -c filecrypt -n "__fish_seen_subcommand_from help" -a "$commands"

complete -c filecrypt -n "__fish_seen_subcommand_from completion" -a 'bash zsh fish'
`
