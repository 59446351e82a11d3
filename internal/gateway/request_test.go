package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payform/internal/form"
)

func TestBuildRequest(t *testing.T) {
	req, err := BuildRequest(form.MethodUPI, form.Fields{form.FieldUPIID: " alice@bank "})
	require.NoError(t, err)
	assert.Equal(t, UPIRequest{UPIID: "alice@bank"}, req)

	req, err = BuildRequest(form.MethodCard, form.Fields{
		form.FieldCardholderName: "Alice Smith",
		form.FieldCardNumber:     "4111 1111 1111 1111",
		form.FieldExpiryDate:     "12/25",
		form.FieldCVV:            "123",
	})
	require.NoError(t, err)
	assert.Equal(t, CardRequest{
		CardholderName: "Alice Smith",
		CardNumber:     "4111111111111111", // display grouping never hits the wire
		ExpiryDate:     "12/25",
		CVV:            "123",
	}, req)

	req, err = BuildRequest(form.MethodNetBanking, form.Fields{form.FieldBank: "HDFC"})
	require.NoError(t, err)
	assert.Equal(t, NetBankingRequest{Bank: "HDFC"}, req)

	req, err = BuildRequest(form.MethodWallet, form.Fields{form.FieldWallet: "Paytm"})
	require.NoError(t, err)
	assert.Equal(t, WalletRequest{Wallet: "Paytm"}, req)

	_, err = BuildRequest(form.Method("cash"), form.Fields{})
	assert.Error(t, err)
}

func TestEndpointPath(t *testing.T) {
	assert.Equal(t, "/api/pay/upi", EndpointPath(form.MethodUPI))
	assert.Equal(t, "/api/pay/card", EndpointPath(form.MethodCard))
	assert.Equal(t, "/api/pay/netbanking", EndpointPath(form.MethodNetBanking))
	assert.Equal(t, "/api/pay/wallet", EndpointPath(form.MethodWallet))
}
