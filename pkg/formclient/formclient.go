// Package formclient drives the quote form end to end: it collects the raw
// field values, runs the same local checks the site runs before it talks to
// the network, posts the request to /api/angebot and renders the outcome
// through a View.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"facility-website/internal/common/logger"
	"facility-website/internal/quote"
)

// MessageKind selects how the view styles a rendered message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// View is the rendering surface the controller drives. Implementations are
// expected to bring the message into view when ShowMessage is called.
type View interface {
	SetSubmitting(busy bool)
	ShowMessage(kind MessageKind, text string)
	HideMessage()
	ClearFields()
}

// User-facing texts. Clients and tests match on these byte for byte.
const (
	MsgRequiredFields = "Bitte füllen Sie alle Pflichtfelder aus."
	MsgInvalidEmail   = "Bitte geben Sie eine gültige E-Mail-Adresse ein."
	MsgSelectService  = "Bitte wählen Sie mindestens eine gewünschte Leistung aus."
	MsgSubmitAccepted = "Vielen Dank! Ihre Anfrage wurde erfolgreich übermittelt. Sie erhalten binnen 24 Stunden ein unverbindliches Angebot von uns."
	MsgGenericRetry   = "Ein Fehler ist aufgetreten. Bitte versuchen Sie es später erneut."
	MsgTransportFail  = "Ein Fehler ist aufgetreten. Bitte versuchen Sie es später erneut oder kontaktieren Sie uns direkt unter 0251 / 123 456."
)

// DefaultDismissAfter is how long a success message stays visible.
const DefaultDismissAfter = 8 * time.Second

// emailPattern rejects whitespace and @-signs in the local and domain parts
// and requires a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a local check failure; nothing was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RejectedError means the server answered but refused the submission.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string { return e.Message }

// TransportError means the request never produced a usable response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "submit failed: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// Config carries the controller's settings.
type Config struct {
	Endpoint     string
	DismissAfter time.Duration
}

// ControllerDependencies carries the controller's collaborators.
type ControllerDependencies struct {
	Transport *Transport
	View      View
	Logger    logger.Logger

	// Schedule defers a function; tests inject a synchronous stand-in.
	// Defaults to time.AfterFunc.
	Schedule func(d time.Duration, f func())
}

// Controller is the form controller. One instance serves many submissions.
type Controller struct {
	endpoint     string
	dismissAfter time.Duration
	transport    *Transport
	view         View
	logger       logger.Logger
	schedule     func(d time.Duration, f func())
}

func NewController(deps ControllerDependencies, cfg *Config) *Controller {
	c := &Controller{
		endpoint:     cfg.Endpoint,
		dismissAfter: cfg.DismissAfter,
		transport:    deps.Transport,
		view:         deps.View,
		logger:       deps.Logger,
		schedule:     deps.Schedule,
	}
	if c.dismissAfter <= 0 {
		c.dismissAfter = DefaultDismissAfter
	}
	if c.transport == nil {
		c.transport = NewTransport(0)
	}
	if c.logger == nil {
		c.logger = logger.NewNoOpLogger()
	}
	if c.schedule == nil {
		c.schedule = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return c
}

// Collect builds a request from raw form values. Repeated "services" keys
// accumulate; every other field takes its first value.
func Collect(values url.Values) *quote.Request {
	return &quote.Request{
		Company:   values.Get("company"),
		Name:      values.Get("name"),
		Email:     values.Get("email"),
		Phone:     values.Get("phone"),
		Services:  values["services"],
		Address:   values.Get("address"),
		Size:      values.Get("size"),
		Frequency: values.Get("frequency"),
		Message:   values.Get("message"),
	}
}

// validateLocal runs the pre-flight checks in their fixed order: required
// fields first, then the email shape, then the service selection. The first
// failure wins.
func validateLocal(req *quote.Request) *ValidationError {
	if req.Name == "" || req.Email == "" {
		return &ValidationError{Message: MsgRequiredFields}
	}
	if !emailPattern.MatchString(req.Email) {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	if len(req.Services) == 0 {
		return &ValidationError{Message: MsgSelectService}
	}
	return nil
}

// Submit collects, validates and posts the form, rendering the outcome on
// the view. The returned error classifies the outcome for callers; every
// outcome has already been rendered when Submit returns.
func (c *Controller) Submit(ctx context.Context, values url.Values) error {
	req := Collect(values)

	if verr := validateLocal(req); verr != nil {
		c.view.ShowMessage(MessageError, verr.Message)
		return verr
	}

	c.view.SetSubmitting(true)
	defer c.view.SetSubmitting(false)

	resp, err := c.post(ctx, req)
	if err != nil {
		c.logger.Warn("quote submission failed in transit", map[string]interface{}{
			"endpoint": c.endpoint,
			"error":    err.Error(),
		})
		c.view.ShowMessage(MessageError, MsgTransportFail)
		return &TransportError{Err: err}
	}

	if resp.ok {
		c.view.ShowMessage(MessageSuccess, MsgSubmitAccepted)
		c.view.ClearFields()
		c.schedule(c.dismissAfter, c.view.HideMessage)
		return nil
	}

	msg := resp.errorText
	if msg == "" {
		msg = MsgGenericRetry
	}
	c.view.ShowMessage(MessageError, msg)
	return &RejectedError{StatusCode: resp.statusCode, Message: msg}
}

type serverAnswer struct {
	ok         bool
	statusCode int
	errorText  string
}

func (c *Controller) post(ctx context.Context, req *quote.Request) (*serverAnswer, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.transport.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	// An unreadable or non-JSON body counts as a transport failure even when
	// the status line arrived, there is nothing left to render from it.
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &serverAnswer{
		ok:         httpResp.StatusCode == http.StatusOK && body.Success,
		statusCode: httpResp.StatusCode,
		errorText:  body.Error,
	}, nil
}
