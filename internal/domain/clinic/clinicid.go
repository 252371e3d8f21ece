// Package clinic defines how tenant identity is derived from a Google
// account.
package clinic

import (
	"fmt"
	"strings"
)

// IDPrefix prefixes every clinic identifier derived from an email.
const IDPrefix = "clinic_"

// IDFromEmail derives the tenant identifier from the email's local
// part. Two accounts sharing a local part map to the same clinic; the
// domain carries no tenant information.
func IDFromEmail(email string) (string, error) {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return "", fmt.Errorf("invalid email %q: missing @", email)
	}
	if local == "" {
		return "", fmt.Errorf("invalid email %q: empty local part", email)
	}
	return IDPrefix + local, nil
}
