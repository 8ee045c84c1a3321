// Package format holds display-formatting helpers for directory pages.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Phone formats a US phone number as (XXX) XXX-XXXX. Ten digits are
// formatted directly; eleven digits with a leading 1 drop the country code.
// Anything else is returned as given.
func Phone(raw string) string {
	var digits []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return raw
	}
	var b strings.Builder
	b.Grow(14)
	b.WriteByte('(')
	b.Write(digits[0:3])
	b.WriteString(") ")
	b.Write(digits[3:6])
	b.WriteByte('-')
	b.Write(digits[6:10])
	return b.String()
}

// CategorySlug folds a category display name to its document ID: trimmed
// and lower-cased.
func CategorySlug(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CategoryName renders a category slug for display, capitalizing each word
// ("baby supplies" -> "Baby Supplies").
func CategoryName(slug string) string {
	words := strings.Fields(slug)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
