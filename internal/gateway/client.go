package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payform/internal/form"
)

// DefaultTimeout bounds one payment exchange. A hung gateway turns into
// a transport failure instead of leaving the form loading forever.
const DefaultTimeout = 30 * time.Second

// Client submits payment requests to the gateway and interprets the
// response. It performs no retries; a failed attempt needs a new
// user-initiated submission.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// wireResponse covers both transaction id spellings the gateway has
// been seen to use.
type wireResponse struct {
	Success          *bool    `json:"success"`
	Message          string   `json:"message"`
	Error            string   `json:"error"`
	Errors           []string `json:"errors"`
	TransactionID    string   `json:"transaction_id"`
	TransactionIDAlt string   `json:"transactionId"`
}

func (w *wireResponse) transactionID() string {
	if w.TransactionID != "" {
		return w.TransactionID
	}
	return w.TransactionIDAlt
}

// Submit POSTs the payload to the method's endpoint and maps the outcome
// into a Result. Transport problems are reported in the Result, never as
// a panic or a dropped error: every exit path yields a terminal status.
func (c *Client) Submit(ctx context.Context, method form.Method, payload any) Result {
	attemptID := uuid.NewString()
	url := c.baseURL + EndpointPath(method)

	body, err := json.Marshal(payload)
	if err != nil {
		return c.transportFailure(attemptID, "encode payload: "+err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return c.transportFailure(attemptID, "build request: "+err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Attempt-ID", attemptID)

	c.logger.Infow("submitting payment", "method", method, "endpoint", url, "attempt_id", attemptID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return c.transportFailure(attemptID, "Payment request timed out")
		}
		return c.transportFailure(attemptID, "Network error: "+err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportFailure(attemptID, "read response: "+err.Error())
	}

	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return c.transportFailure(attemptID, "malformed gateway response: "+err.Error())
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if ok && wire.Success != nil && *wire.Success {
		c.logger.Infow("payment accepted", "attempt_id", attemptID, "transaction_id", wire.transactionID())
		return Result{
			Status:        StatusSuccess,
			Message:       wire.Message,
			TransactionID: wire.transactionID(),
		}
	}

	// A decodable body without success:true is a business rejection, even
	// on a non-2xx status. The gateway reports reasons via error, message
	// or an errors list.
	msg := wire.Error
	if msg == "" {
		msg = wire.Message
	}
	if msg == "" {
		msg = "Payment processing failed"
	}
	c.logger.Warnw("payment rejected", "attempt_id", attemptID, "http", resp.StatusCode, "message", msg)
	return Result{
		Status:      StatusRejected,
		Message:     msg,
		FieldErrors: wire.Errors,
	}
}

func (c *Client) transportFailure(attemptID, msg string) Result {
	c.logger.Errorw("payment exchange failed", "attempt_id", attemptID, "error", msg)
	return Result{Status: StatusTransportFailure, Message: msg}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
