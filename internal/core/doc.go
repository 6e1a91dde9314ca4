// Package core provides the file and text operations behind the
// filecrypt commands.
//
// Operations:
//   - EncryptFile/DecryptFile: whole-file encryption to and from the
//     envelope format, with atomic output writes
//   - EncryptText/DecryptText: text encryption with base64 transport
//   - GeneratePassword: random password generation
//   - ReadPassword/ReadPasswordConfirm: no-echo terminal prompts
//
// Output files are written through a temp file and rename, so a failed
// operation never leaves a partially written file behind.
package core
