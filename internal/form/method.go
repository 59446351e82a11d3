package form

import "fmt"

// Method identifies how the user chose to pay. It stays fixed for the
// duration of one submission attempt.
type Method string

const (
	MethodUPI        Method = "upi"
	MethodCard       Method = "card"
	MethodNetBanking Method = "netbanking"
	MethodWallet     Method = "wallet"
)

// FieldID keys one input of the payment form.
type FieldID string

const (
	FieldCardholderName FieldID = "cardholderName"
	FieldCardNumber     FieldID = "cardNumber"
	FieldExpiryDate     FieldID = "expiryDate"
	FieldCVV            FieldID = "cvv"
	FieldUPIID          FieldID = "upiId"
	FieldBank           FieldID = "bank"
	FieldWallet         FieldID = "wallet"
)

// Fields holds the raw text currently typed into each input.
type Fields map[FieldID]string

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodUPI, MethodCard, MethodNetBanking, MethodWallet:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown payment method: %q", s)
}

// Fields returns the field identifiers relevant to the method, in the
// order the form displays them.
func (m Method) Fields() []FieldID {
	switch m {
	case MethodUPI:
		return []FieldID{FieldUPIID}
	case MethodCard:
		return []FieldID{FieldCardholderName, FieldCardNumber, FieldExpiryDate, FieldCVV}
	case MethodNetBanking:
		return []FieldID{FieldBank}
	case MethodWallet:
		return []FieldID{FieldWallet}
	}
	return nil
}

// KnownBanks and KnownWallets are the options the net-banking and wallet
// pickers offer. The form only checks that something was selected; the
// lists exist for rendering the choices.
var (
	KnownBanks   = []string{"SBI", "HDFC", "ICICI", "Axis", "PNB", "BOB"}
	KnownWallets = []string{"Paytm", "PhonePe", "GooglePay", "AmazonPay"}
)
