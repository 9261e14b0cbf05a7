package submission

import "strings"

// PhoneDigits is the digit count of a complete phone number: two area digits
// plus a nine-digit subscriber number.
const PhoneDigits = 11

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// MaskPhone renders the digits of raw, truncated to PhoneDigits, as the
// progressively filled mask "(DD) DDDDD-DDDD". Each punctuation segment
// appears only once enough digits exist, so "119" renders as "(11) 9".
// MaskPhone(MaskPhone(x)) == MaskPhone(x).
func MaskPhone(raw string) string {
	digits := Digits(raw)
	if len(digits) > PhoneDigits {
		digits = digits[:PhoneDigits]
	}
	n := len(digits)

	var b strings.Builder
	if n > 0 {
		b.WriteString("(")
		b.WriteString(digits[:min(2, n)])
	}
	if n >= 2 {
		b.WriteString(") ")
	}
	if n >= 3 {
		b.WriteString(digits[2:min(7, n)])
	}
	if n >= 7 {
		b.WriteString("-")
		b.WriteString(digits[7:])
	}
	return b.String()
}
