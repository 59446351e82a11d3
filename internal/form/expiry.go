package form

import (
	"errors"
	"strconv"
	"time"
)

var (
	ErrExpiryFormat = errors.New("Expiry date must be in MM/YY format")
	ErrCardExpired  = errors.New("Card has expired")
)

// CheckExpiryStrict enforces the month range 01-12 and rejects dates in
// the past. The form itself accepts any syntactic MM/YY; callers that
// want the stricter server-side rule opt in here.
func CheckExpiryStrict(value string, now time.Time) error {
	if !expiryRe.MatchString(value) {
		return ErrExpiryFormat
	}
	month, _ := strconv.Atoi(value[:2])
	year, _ := strconv.Atoi(value[3:])
	if month < 1 || month > 12 {
		return ErrExpiryFormat
	}
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear || (year == curYear && month < curMonth) {
		return ErrCardExpired
	}
	return nil
}
