// Package identity canonicalizes the phone numbers and emails guests use to
// prove who they are.
package identity

import (
	"regexp"
	"strings"
	"unicode"
)

// Kind tells which identity field a submission is compared against.
type Kind int

const (
	KindPhone Kind = iota
	KindEmail
)

func (k Kind) String() string {
	if k == KindEmail {
		return "email"
	}

	return "phone"
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Identity is a normalized submission.
type Identity struct {
	Kind  Kind
	Value string
}

// Empty reports whether nothing comparable is left after normalization.
func (i Identity) Empty() bool {
	return i.Value == ""
}

// Parse detects whether raw is an email or a phone number and normalizes it.
func Parse(raw string) Identity {
	if IsEmail(raw) {
		return Identity{Kind: KindEmail, Value: NormalizeEmail(raw)}
	}

	return Identity{Kind: KindPhone, Value: NormalizePhone(raw)}
}

// IsEmail reports whether raw looks like local@domain.tld.
func IsEmail(raw string) bool {
	return emailPattern.MatchString(strings.TrimSpace(raw))
}

// NormalizeEmail trims surrounding whitespace and lowercases.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizePhone keeps only the digits. Country codes and leading zeros are
// not reconciled, so "+1 555 1234" and "555-1234" stay different.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Matches compares a submission with the stored phone and email. A submission
// only matches the field of its own kind, and only when that field is populated.
func Matches(submitted Identity, phone, email string) bool {
	if submitted.Empty() {
		return false
	}

	switch submitted.Kind {
	case KindEmail:
		stored := NormalizeEmail(email)

		return stored != "" && stored == submitted.Value
	default:
		stored := NormalizePhone(phone)

		return stored != "" && stored == submitted.Value
	}
}

// Record returns the phone and email to persist when raw becomes the
// identity of record for a guest with nothing on file.
func Record(submitted Identity) (phone, email string) {
	if submitted.Kind == KindEmail {
		return "", submitted.Value
	}

	return submitted.Value, ""
}
