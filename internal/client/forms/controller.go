// Package forms drives every form of the client through the same submission
// lifecycle:
//
//	idle -> validating -> (validation failed -> idle)
//	                   |  (submitting -> succeeded -> idle)
//	                   |  (submitting -> failed -> idle)
//
// Field errors are cleared at the start of every attempt. A validation
// failure is reported only through Errors and never as a toast. Any failure
// of the submitting step becomes exactly one error toast with the form's
// fixed title and description, and the submitted values are kept for a
// retry.
package forms

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/dmitrijs2005/gobarber/internal/client/toast"
	"github.com/dmitrijs2005/gobarber/internal/client/validation"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/dmitrijs2005/gobarber/internal/logging"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// Outcome is the result of one submission attempt.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeValidationFailed
	OutcomeFailed
	// OutcomeBusy means another submission of the same form was still
	// running; nothing was done.
	OutcomeBusy
	// OutcomeIgnored means there was nothing to submit.
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeValidationFailed:
		return "validation failed"
	case OutcomeFailed:
		return "failed"
	case OutcomeBusy:
		return "busy"
	case OutcomeIgnored:
		return "ignored"
	}
	return "unknown"
}

// Navigator receives fire-and-forget route changes.
type Navigator interface {
	Navigate(path string)
}

// Operation is the single network step of a form, including any session
// mutation that follows it.
type Operation func(ctx context.Context, data validation.Data) error

// Definition describes one form.
type Definition struct {
	Name   string
	Schema validation.Schema
	Run    Operation

	// Success is pushed after Run succeeds when its Title is set.
	Success toast.Message
	// Failure is pushed, as an error, whenever Run fails.
	Failure toast.Message
	// Next is the route to navigate to after success; "" stays put.
	Next string
	// ExposesLoading makes Loading report true while submitting.
	ExposesLoading bool
}

// Controller runs submissions of a single form. It is safe for concurrent
// use; a Submit that overlaps a running one returns OutcomeBusy.
type Controller struct {
	def      Definition
	notifier toast.Notifier
	nav      Navigator
	log      logging.Logger

	mu      sync.Mutex
	state   State
	loading bool
	values  validation.Data
	errs    validation.FieldErrors
}

// NewController builds a controller for def. initial seeds Values.
func NewController(def Definition, notifier toast.Notifier, nav Navigator, log logging.Logger, initial validation.Data) *Controller {
	return &Controller{
		def:      def,
		notifier: notifier,
		nav:      nav,
		log:      log.With("form", def.Name),
		values:   maps.Clone(initial),
	}
}

// Submit runs the whole lifecycle for data and returns how it ended.
func (c *Controller) Submit(ctx context.Context, data validation.Data) Outcome {
	return c.submit(ctx, data, true, c.def.Run)
}

func (c *Controller) submit(ctx context.Context, data validation.Data, validate bool, op Operation) Outcome {
	if !c.begin(data) {
		c.log.Debug(ctx, "submit ignored", "reason", common.ErrSubmissionInFlight.Error())
		return OutcomeBusy
	}
	defer c.setState(StateIdle)

	if validate && c.def.Schema != nil {
		if err := c.def.Schema.Validate(data); err != nil {
			var verr *validation.Error
			if !errors.As(err, &verr) {
				return c.fail(ctx, err)
			}
			c.mu.Lock()
			c.errs = verr.Fields
			c.mu.Unlock()
			c.log.Debug(ctx, "validation failed", "fields", len(verr.Fields))
			return OutcomeValidationFailed
		}
	}

	if err := c.run(ctx, data, op); err != nil {
		return c.fail(ctx, err)
	}

	if c.def.Success.Title != "" {
		msg := c.def.Success
		msg.Type = toast.TypeSuccess
		c.notifier.Push(msg)
	}
	if c.def.Next != "" {
		c.nav.Navigate(c.def.Next)
	}
	c.log.Info(ctx, "submitted")
	return OutcomeSucceeded
}

// begin moves idle to validating, clearing field errors and remembering the
// submitted values. It reports false when the form is not idle.
func (c *Controller) begin(data validation.Data) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return false
	}
	c.state = StateValidating
	c.errs = nil
	c.values = maps.Clone(data)
	return true
}

func (c *Controller) run(ctx context.Context, data validation.Data, op Operation) error {
	c.mu.Lock()
	c.state = StateSubmitting
	c.loading = c.def.ExposesLoading
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	return op(ctx, data)
}

func (c *Controller) fail(ctx context.Context, err error) Outcome {
	c.log.Warn(ctx, "submission failed", "error", err.Error())

	msg := c.def.Failure
	msg.Type = toast.TypeError
	c.notifier.Push(msg)
	return OutcomeFailed
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether a submission is in flight, for forms that expose
// it. It is always false for the others.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Values returns a copy of the last submitted (or initial) values.
func (c *Controller) Values() validation.Data {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.values)
}

// Errors returns the field errors of the last attempt, nil if it had none.
func (c *Controller) Errors() validation.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.errs)
}

// Name is the form name used in logs.
func (c *Controller) Name() string {
	return c.def.Name
}
