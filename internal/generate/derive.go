package generate

import "strings"

// EmailDomain is the fixed domain suffix appended to derived emails.
const EmailDomain = "@example.com"

// DeriveEmails computes one email per input name: lowercase, spaces
// replaced with dots, apostrophes and hyphens stripped, plus the fixed
// domain. It never fails; a degenerate name that sanitizes to nothing
// falls back to the local part "user" so the output is still a
// syntactically valid address.
func DeriveEmails(names []string) []string {
	emails := make([]string, len(names))
	for i, name := range names {
		emails[i] = DeriveEmail(name)
	}
	return emails
}

// DeriveEmail derives a single email address from a name.
func DeriveEmail(name string) string {
	local := strings.ToLower(name)
	local = strings.ReplaceAll(local, " ", ".")
	local = strings.ReplaceAll(local, "'", "")
	local = strings.ReplaceAll(local, "-", "")
	if local == "" {
		local = "user"
	}
	return local + EmailDomain
}
