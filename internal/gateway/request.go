package gateway

import (
	"fmt"
	"strings"

	"payform/internal/form"
)

// Wire payloads, one shape per payment method. Field names follow the
// gateway's snake_case contract.

type UPIRequest struct {
	UPIID string `json:"upi_id"`
}

type CardRequest struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
}

type NetBankingRequest struct {
	Bank string `json:"bank"`
}

type WalletRequest struct {
	Wallet string `json:"wallet"`
}

// BuildRequest maps validated field text into the method's payload.
// The card number goes over the wire digits-only, without the display
// grouping. Callers must only invoke this after validation passed.
func BuildRequest(method form.Method, fields form.Fields) (any, error) {
	switch method {
	case form.MethodUPI:
		return UPIRequest{UPIID: strings.TrimSpace(fields[form.FieldUPIID])}, nil
	case form.MethodCard:
		return CardRequest{
			CardholderName: strings.TrimSpace(fields[form.FieldCardholderName]),
			CardNumber:     strings.ReplaceAll(fields[form.FieldCardNumber], " ", ""),
			ExpiryDate:     strings.TrimSpace(fields[form.FieldExpiryDate]),
			CVV:            strings.TrimSpace(fields[form.FieldCVV]),
		}, nil
	case form.MethodNetBanking:
		return NetBankingRequest{Bank: strings.TrimSpace(fields[form.FieldBank])}, nil
	case form.MethodWallet:
		return WalletRequest{Wallet: strings.TrimSpace(fields[form.FieldWallet])}, nil
	}
	return nil, fmt.Errorf("no payload shape for method: %s", method)
}

// EndpointPath returns the gateway path a method submits to.
func EndpointPath(method form.Method) string {
	return "/api/pay/" + string(method)
}
