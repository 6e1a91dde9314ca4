// Package keyring stores filecrypt passwords in the OS keyring, keyed by
// a user-chosen profile name.
package keyring

import (
	"github.com/zalando/go-keyring"
)

const serviceName = "filecrypt"

// SavePassword stores a password in the OS keyring under the given profile
func SavePassword(profile string, password string) error {
	return keyring.Set(serviceName, profile, password)
}

// GetPassword retrieves a profile's password from the OS keyring
func GetPassword(profile string) (string, error) {
	return keyring.Get(serviceName, profile)
}

// DeletePassword removes a profile's password from the OS keyring
func DeletePassword(profile string) error {
	return keyring.Delete(serviceName, profile)
}

// HasPassword checks if a password is stored for the given profile
func HasPassword(profile string) bool {
	_, err := keyring.Get(serviceName, profile)
	return err == nil
}
