// Package session wires one payment form instance together: keystrokes
// flow through the formatter into the field set, and Submit drives the
// validate → build → submit → project pipeline.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"payform/internal/form"
	"payform/internal/gateway"
	"payform/internal/ui"
)

var (
	// ErrInFlight is returned when Submit is called while a previous
	// attempt is still awaiting its response.
	ErrInFlight = errors.New("submission already in flight")

	// ErrValidationFailed is returned when local validation blocked the
	// submission; the per-field reasons are on the projector.
	ErrValidationFailed = errors.New("validation failed")
)

// Session owns the field values and the active method for one form.
// Field edits and tab switches stay responsive while a submission is in
// flight, but the in-flight request is built from a snapshot and cannot
// be affected by them.
type Session struct {
	mu       sync.Mutex
	method   form.Method
	fields   form.Fields
	inFlight bool

	client    *gateway.Client
	projector *ui.Projector
	logger    *zap.SugaredLogger
}

func New(method form.Method, client *gateway.Client, projector *ui.Projector, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{
		method:    method,
		fields:    make(form.Fields),
		client:    client,
		projector: projector,
		logger:    logger,
	}
}

// SetField runs the keystroke through the formatter, stores the
// canonical text and returns it for display.
func (s *Session) SetField(id form.FieldID, raw string) string {
	canonical := form.FormatField(id, raw)
	s.mu.Lock()
	s.fields[id] = canonical
	s.mu.Unlock()
	return canonical
}

// Field returns the current canonical text of one input.
func (s *Session) Field(id form.FieldID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[id]
}

// Method returns the active payment method.
func (s *Session) Method() form.Method {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// SelectMethod switches the active tab and clears the rendered errors,
// leaving typed field text in place.
func (s *Session) SelectMethod(m form.Method) {
	s.mu.Lock()
	s.method = m
	s.mu.Unlock()
	s.projector.Reset()
}

// Submit runs one attempt end to end. Validation failures stop before
// any request is built; otherwise exactly one exchange happens and its
// outcome lands on the projector. Only one attempt may be in flight per
// session.
func (s *Session) Submit(ctx context.Context) (gateway.Result, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return gateway.Result{}, ErrInFlight
	}
	s.inFlight = true
	method := s.method
	fields := s.fields.Clone()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	s.projector.ValidationStarted()
	results, ok := form.CheckFields(method, fields)
	if !ok {
		s.logger.Infow("submission blocked by validation", "method", method)
		s.projector.ValidationFailed(results)
		return gateway.Result{}, ErrValidationFailed
	}
	s.projector.FieldResults(results)

	payload, err := gateway.BuildRequest(method, fields)
	if err != nil {
		s.projector.ValidationFailed(nil)
		return gateway.Result{}, err
	}

	s.projector.SubmitStarted()
	res := s.client.Submit(ctx, method, payload)
	s.projector.SubmitFinished(res)
	return res, nil
}
