package form

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldResult is the outcome of validating one field. Produced fresh on
// every validation pass, never persisted across submissions.
type FieldResult struct {
	Valid   bool
	Message string
}

var Validate *validator.Validate

var (
	nameRe   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	upiRe    = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
	digitsRe = regexp.MustCompile(`^\d+$`)
)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	Validate.RegisterValidation("namelen", func(fl validator.FieldLevel) bool {
		return len(strings.TrimSpace(fl.Field().String())) >= 3
	})
	Validate.RegisterValidation("namechars", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	Validate.RegisterValidation("cardnumlen", func(fl validator.FieldLevel) bool {
		return len(stripSpaces(fl.Field().String())) >= 13
	})
	Validate.RegisterValidation("carddigits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(stripSpaces(fl.Field().String()))
	})
	Validate.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
		return LuhnValid(stripSpaces(fl.Field().String()))
	})
	Validate.RegisterValidation("cardexpiry", func(fl validator.FieldLevel) bool {
		return expiryRe.MatchString(fl.Field().String())
	})
	Validate.RegisterValidation("cvvformat", func(fl validator.FieldLevel) bool {
		return cvvRe.MatchString(fl.Field().String())
	})
	Validate.RegisterValidation("upiid", func(fl validator.FieldLevel) bool {
		return upiRe.MatchString(fl.Field().String())
	})
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// LuhnValid reports whether the digit string passes the Luhn mod-10
// checksum: walking right to left, every second digit is doubled and
// 9 is subtracted when the doubling exceeds 9. Empty or non-digit input
// is invalid without the checksum running.
func LuhnValid(number string) bool {
	if number == "" || !digitsRe.MatchString(number) {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// One tagged struct per method; the tags run in order and a field's
// remaining tags are skipped once one fails, so each field reports its
// most specific failure first.
type upiFields struct {
	UPIID string `validate:"upiid"`
}

type cardFields struct {
	CardholderName string `validate:"namelen,namechars"`
	CardNumber     string `validate:"cardnumlen,carddigits,luhn"`
	ExpiryDate     string `validate:"cardexpiry"`
	CVV            string `validate:"cvvformat"`
}

type netBankingFields struct {
	Bank string `validate:"required"`
}

type walletFields struct {
	Wallet string `validate:"required"`
}

var fieldByStructField = map[string]FieldID{
	"UPIID":          FieldUPIID,
	"CardholderName": FieldCardholderName,
	"CardNumber":     FieldCardNumber,
	"ExpiryDate":     FieldExpiryDate,
	"CVV":            FieldCVV,
	"Bank":           FieldBank,
	"Wallet":         FieldWallet,
}

var messageByTag = map[FieldID]map[string]string{
	FieldCardholderName: {
		"namelen":   "Cardholder name must be at least 3 characters",
		"namechars": "Cardholder name must contain only letters and spaces",
	},
	FieldCardNumber: {
		"cardnumlen": "Card number must be at least 13 digits",
		"carddigits": "Card number must contain only digits",
		"luhn":       "Invalid card number",
	},
	FieldExpiryDate: {
		"cardexpiry": "Expiry date must be in MM/YY format",
	},
	FieldCVV: {
		"cvvformat": "CVV must be 3-4 digits",
	},
	FieldUPIID: {
		"upiid": "Invalid UPI ID format (e.g., username@bankname)",
	},
	FieldBank: {
		"required": "Please select a bank",
	},
	FieldWallet: {
		"required": "Please select a wallet",
	},
}

// CheckFields validates every field relevant to the method and reports a
// per-field result plus the overall flag. It never rewrites field text.
func CheckFields(method Method, fields Fields) (map[FieldID]FieldResult, bool) {
	var target any
	switch method {
	case MethodUPI:
		target = upiFields{UPIID: strings.TrimSpace(fields[FieldUPIID])}
	case MethodCard:
		target = cardFields{
			CardholderName: strings.TrimSpace(fields[FieldCardholderName]),
			CardNumber:     strings.TrimSpace(fields[FieldCardNumber]),
			ExpiryDate:     strings.TrimSpace(fields[FieldExpiryDate]),
			CVV:            strings.TrimSpace(fields[FieldCVV]),
		}
	case MethodNetBanking:
		target = netBankingFields{Bank: strings.TrimSpace(fields[FieldBank])}
	case MethodWallet:
		target = walletFields{Wallet: strings.TrimSpace(fields[FieldWallet])}
	default:
		return nil, false
	}

	results := make(map[FieldID]FieldResult, len(method.Fields()))
	for _, id := range method.Fields() {
		results[id] = FieldResult{Valid: true}
	}

	err := Validate.Struct(target)
	if err == nil {
		return results, true
	}

	for _, fe := range err.(validator.ValidationErrors) {
		id, ok := fieldByStructField[fe.StructField()]
		if !ok {
			continue
		}
		msg := messageByTag[id][fe.Tag()]
		if msg == "" {
			msg = "Invalid value"
		}
		results[id] = FieldResult{Valid: false, Message: msg}
	}
	return results, false
}
