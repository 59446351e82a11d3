package gateway

// Status tags the outcome of one submission attempt.
type Status string

const (
	StatusSuccess          Status = "success"
	StatusRejected         Status = "rejected"
	StatusTransportFailure Status = "transport_failure"
)

// Result is produced exactly once per submission attempt.
//
// StatusRejected means the gateway answered and turned the payment down
// (business rule); StatusTransportFailure means the exchange itself broke
// (network error, timeout, undecodable body) and retrying may help.
type Result struct {
	Status        Status
	Message       string
	TransactionID string
	FieldErrors   []string
}
