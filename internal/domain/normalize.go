package domain

import (
	"strings"
)

// NormalizeSearch prepares free-text admin search input:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved; matching is case-insensitive at the query layer.
func NormalizeSearch(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeEmail trims and lowercases an email address so that identities
// compare equal regardless of how the applicant typed them.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
