package validators

import "strings"

const (
	minPhoneDigits = 6
	maxPhoneDigits = 15
)

// NormalizePhone reduces a phone number to its canonical digits-only form.
// "+381 60 123 4567" and "0601234567" style inputs both normalize; anything
// without a plausible digit count is rejected.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return "", false
	}
	return digits, true
}
