package ui

import (
	"strings"
	"sync"
	"time"

	"payform/internal/form"
	"payform/internal/gateway"
)

// State is the form's UI lifecycle position. Owned exclusively by the
// Projector; everything else talks to it through events.
type State string

const (
	StateIdle             State = "idle"
	StateValidating       State = "validating"
	StateSubmitting       State = "submitting"
	StateSuccess          State = "success"
	StateRejected         State = "rejected"
	StateTransportFailure State = "transport_failure"
)

// BannerKind categorises the global message box.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

type Banner struct {
	Visible bool
	Kind    BannerKind
	Text    string
}

// FieldState is the rendered validity of one input: error text next to
// the field, or a success mark once it validated.
type FieldState struct {
	Valid   bool
	Message string
}

// Snapshot is an immutable view for the rendering layer.
type Snapshot struct {
	State          State
	Fields         map[form.FieldID]FieldState
	Banner         Banner
	TriggerEnabled bool
	LoaderVisible  bool
	TransactionID  string
}

// Config tunes the success display. With Navigate set the projector
// redirects to the confirmation view after NavigateDelay; without it the
// success banner auto-dismisses after BannerDismiss.
type Config struct {
	BannerDismiss time.Duration
	NavigateDelay time.Duration
	Navigate      func(transactionID string)
}

const (
	defaultBannerDismiss = 5 * time.Second
	defaultNavigateDelay = 2 * time.Second
)

// Projector owns one form instance's visual state and mutates it only in
// response to lifecycle and field events.
type Projector struct {
	mu      sync.Mutex
	cfg     Config
	state   State
	fields  map[form.FieldID]FieldState
	banner  Banner
	trigger bool
	loader  bool
	txnID   string
	timer   *time.Timer
}

func NewProjector(cfg Config) *Projector {
	if cfg.BannerDismiss <= 0 {
		cfg.BannerDismiss = defaultBannerDismiss
	}
	if cfg.NavigateDelay <= 0 {
		cfg.NavigateDelay = defaultNavigateDelay
	}
	return &Projector{
		cfg:     cfg,
		state:   StateIdle,
		fields:  make(map[form.FieldID]FieldState),
		trigger: true,
	}
}

func (p *Projector) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	fields := make(map[form.FieldID]FieldState, len(p.fields))
	for k, v := range p.fields {
		fields[k] = v
	}
	return Snapshot{
		State:          p.state,
		Fields:         fields,
		Banner:         p.banner,
		TriggerEnabled: p.trigger,
		LoaderVisible:  p.loader,
		TransactionID:  p.txnID,
	}
}

// ValidationStarted marks the synchronous validation pass. Previous
// terminal output is cleared so a retry starts clean.
func (p *Projector) ValidationStarted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTimer()
	p.state = StateValidating
	p.banner = Banner{}
	p.txnID = ""
	p.fields = make(map[form.FieldID]FieldState)
}

// ValidationFailed renders the per-field errors and returns to Idle
// without any submission.
func (p *Projector) ValidationFailed(results map[form.FieldID]form.FieldResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.applyFieldResults(results)
	p.state = StateIdle
	p.banner = Banner{Visible: true, Kind: BannerError, Text: "Please fix the errors above"}
}

// FieldResults renders validation output without changing the lifecycle
// state, e.g. the success marks right before submission.
func (p *Projector) FieldResults(results map[form.FieldID]form.FieldResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.applyFieldResults(results)
}

// SubmitStarted disables the trigger and shows the loader for the
// duration of the exchange.
func (p *Projector) SubmitStarted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTimer()
	p.state = StateSubmitting
	p.trigger = false
	p.loader = true
	p.banner = Banner{}
}

// SubmitFinished renders the terminal outcome. The trigger is re-enabled
// and the loader hidden on every branch.
func (p *Projector) SubmitFinished(res gateway.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trigger = true
	p.loader = false

	switch res.Status {
	case gateway.StatusSuccess:
		p.state = StateSuccess
		p.txnID = res.TransactionID
		text := res.Message
		if res.TransactionID != "" {
			text += " (ID: " + res.TransactionID + ")"
		}
		p.banner = Banner{Visible: true, Kind: BannerSuccess, Text: text}
		if p.cfg.Navigate != nil {
			id := res.TransactionID
			p.timer = time.AfterFunc(p.cfg.NavigateDelay, func() { p.cfg.Navigate(id) })
		} else {
			p.timer = time.AfterFunc(p.cfg.BannerDismiss, p.dismissBanner)
		}
	case gateway.StatusRejected:
		p.state = StateRejected
		text := res.Message
		if len(res.FieldErrors) > 0 {
			text = strings.Join(res.FieldErrors, ", ")
		}
		p.banner = Banner{Visible: true, Kind: BannerError, Text: text}
	default:
		p.state = StateTransportFailure
		p.banner = Banner{Visible: true, Kind: BannerError, Text: res.Message}
	}
}

// Reset returns the form to a blank Idle, e.g. on a tab switch.
func (p *Projector) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTimer()
	p.state = StateIdle
	p.fields = make(map[form.FieldID]FieldState)
	p.banner = Banner{}
	p.trigger = true
	p.loader = false
	p.txnID = ""
}

func (p *Projector) applyFieldResults(results map[form.FieldID]form.FieldResult) {
	for id, r := range results {
		p.fields[id] = FieldState{Valid: r.Valid, Message: r.Message}
	}
}

// dismissBanner runs from the success timer: the inline banner variant
// clears back to a blank Idle once the display interval elapses.
func (p *Projector) dismissBanner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateSuccess {
		return
	}
	p.state = StateIdle
	p.banner = Banner{}
	p.fields = make(map[form.FieldID]FieldState)
	p.txnID = ""
}

func (p *Projector) stopTimer() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
