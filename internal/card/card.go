// Package card holds the number-handling helpers shared by the credit card
// and debit card resources.
package card

import "strings"

const (
	// NumberLength is the only accepted card number length.
	NumberLength = 16
	// VisibleDigits are the trailing digits left readable after masking.
	VisibleDigits = 4
)

// ValidNumber reports whether s is exactly 16 digits.
func ValidNumber(s string) bool {
	if len(s) != NumberLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Mask replaces every digit except the trailing 4 with '*'. The original
// number is not retained anywhere; masking happens once at write time.
// Already-masked input passes through unchanged.
func Mask(number string) string {
	if len(number) <= VisibleDigits {
		return number
	}
	return strings.Repeat("*", len(number)-VisibleDigits) + number[len(number)-VisibleDigits:]
}
