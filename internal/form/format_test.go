package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"groups of four", "4111111111111111", "4111 1111 1111 1111"},
		{"strips separators", "4111-1111-1111-1111", "4111 1111 1111 1111"},
		{"already formatted", "4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"caps at sixteen digits", "41111111111111112222", "4111 1111 1111 1111"},
		{"partial group keeps no trailing space", "41112", "4111 2"},
		{"letters dropped", "4111abcd1111", "4111 1111"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCardNumber(tt.in))
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"four digits get slash", "1225", "12/25"},
		{"single digit untouched", "1", "1"},
		{"two digits open the year", "12", "12/"},
		{"already formatted", "12/25", "12/25"},
		{"caps at four digits", "122534", "12/25"},
		{"non digits stripped", "1a2b2c5", "12/25"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatExpiry(tt.in))
		})
	}
}

func TestFormatCVV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"digits pass", "123", "123"},
		{"letters stripped", "12a3", "123"},
		{"caps at four", "123456", "1234"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCVV(tt.in))
		})
	}
}

// Applying a formatter to its own output must be a no-op.
func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"", "1", "12", "1225", "4111111111111111", "4111 1111 1111 1111",
		"41111111111111112222", "abc", "12/25", "1-2-3-4", "  9 9 9  ",
		"!@#$%^&*()", "0000", "4111abcd1111efgh2222",
	}
	for _, in := range inputs {
		assert.Equal(t, FormatCardNumber(in), FormatCardNumber(FormatCardNumber(in)), "card: %q", in)
		assert.Equal(t, FormatExpiry(in), FormatExpiry(FormatExpiry(in)), "expiry: %q", in)
		assert.Equal(t, FormatCVV(in), FormatCVV(FormatCVV(in)), "cvv: %q", in)
	}
}

func TestFormatFieldPassThrough(t *testing.T) {
	assert.Equal(t, "Alice Smith", FormatField(FieldCardholderName, "Alice Smith"))
	assert.Equal(t, "alice@bank", FormatField(FieldUPIID, "alice@bank"))
	assert.Equal(t, "HDFC", FormatField(FieldBank, "HDFC"))
	assert.Equal(t, "Paytm", FormatField(FieldWallet, "Paytm"))
	assert.Equal(t, "4111 1111 1111 1111", FormatField(FieldCardNumber, "4111111111111111"))
}
