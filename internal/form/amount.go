package form

import (
	"errors"
	"strconv"
	"strings"
)

// Amount bounds for a single payment.
const MaxAmount = 1_000_000

var (
	ErrAmountInvalid  = errors.New("Invalid amount")
	ErrAmountTooSmall = errors.New("Amount must be greater than 0")
	ErrAmountTooLarge = errors.New("Amount cannot exceed ₹10,00,000")
)

// ParseAmount parses and bounds-checks a payment amount typed by the
// user. The returned error text is user-facing.
func ParseAmount(raw string) (float64, error) {
	amt, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrAmountInvalid
	}
	if amt <= 0 {
		return 0, ErrAmountTooSmall
	}
	if amt > MaxAmount {
		return 0, ErrAmountTooLarge
	}
	return amt, nil
}
