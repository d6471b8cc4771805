package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid checks the address shape without touching the network, so the
// booking wizard can validate synchronously.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
