package form

import "strings"

// Formatting rewrites an input's text into its canonical display form on
// every keystroke. Every function here is pure and idempotent: feeding a
// function its own output returns the same string.

const (
	maxCardDigits   = 16
	maxExpiryDigits = 4
	maxCVVDigits    = 4
	cardGroupSize   = 4
)

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber strips everything but digits, caps at 16 digits and
// regroups them in blocks of four. No trailing space is left after the
// last group.
func FormatCardNumber(raw string) string {
	d := digitsOnly(raw)
	if len(d) > maxCardDigits {
		d = d[:maxCardDigits]
	}
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		if i > 0 && i%cardGroupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// FormatExpiry strips everything but digits, caps at 4 digits and inserts
// the MM/YY slash once two digits have been typed.
func FormatExpiry(raw string) string {
	d := digitsOnly(raw)
	if len(d) > maxExpiryDigits {
		d = d[:maxExpiryDigits]
	}
	if len(d) >= 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

// FormatCVV strips everything but digits and caps at 4 digits.
func FormatCVV(raw string) string {
	d := digitsOnly(raw)
	if len(d) > maxCVVDigits {
		d = d[:maxCVVDigits]
	}
	return d
}

// FormatField applies the canonical transform for the given field.
// Name, UPI id, bank and wallet are validated but never rewritten.
func FormatField(id FieldID, raw string) string {
	switch id {
	case FieldCardNumber:
		return FormatCardNumber(raw)
	case FieldExpiryDate:
		return FormatExpiry(raw)
	case FieldCVV:
		return FormatCVV(raw)
	}
	return raw
}
