package services

import "strings"

// Slugify derives a URL slug: trimmed, lower-cased, spaces replaced with
// hyphens. Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// NormalizeEmail lower-cases and trims an email before it is stored or compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
