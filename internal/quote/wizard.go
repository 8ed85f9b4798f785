package quote

import (
	"context"
	"errors"
	"strings"

	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
)

// State is the current position of a quote draft in the wizard. Each step
// state owns exactly one group of fields; the three trailing states model
// the submission outcome.
type State string

const (
	StateContact    State = "contact"    // step 1: who is asking
	StateWatch      State = "watch"      // step 2: which watch
	StateProblem    State = "problem"    // step 3: what is wrong
	StateSubmitting State = "submitting" // outbound request in flight
	StateSubmitted  State = "submitted"  // terminal
	StateFailed     State = "failed"     // recoverable back to step 3
)

var ErrInvalidTransition = apperror.NewAppError("action not allowed in the current step")

// Draft is an in-progress quote request. Forward navigation is gated by the
// validation of the current step only; going back never re-validates and
// never loses entered values. A draft is owned by a single request flow and
// is not safe for concurrent use.
type Draft struct {
	state       State
	Contact     ContactInfo
	Watch       WatchInfo
	Problem     ProblemInfo
	fieldErrors map[string]string
}

func NewDraft() *Draft {
	return &Draft{
		state: StateContact,
		// the pre-selected choice when the customer never touches the field
		Watch: WatchInfo{Type: WatchTypeAutomatic},
	}
}

func (d *Draft) State() State {
	return d.state
}

// FieldErrors returns the per-field messages of the last failed validation,
// or nil after a successful one.
func (d *Draft) FieldErrors() map[string]string {
	return d.fieldErrors
}

// Next advances to the following step when the current step's fields are
// valid. On validation failure the draft stays where it is and FieldErrors
// is populated.
func (d *Draft) Next() error {
	switch d.state {
	case StateContact:
		if err := d.record(ValidateContact(d.Contact)); err != nil {
			return err
		}
		d.state = StateWatch
	case StateWatch:
		if err := d.record(ValidateWatch(d.Watch)); err != nil {
			return err
		}
		d.state = StateProblem
	default:
		return ErrInvalidTransition
	}

	return nil
}

// Back returns to the previous step unconditionally, keeping all values.
func (d *Draft) Back() error {
	switch d.state {
	case StateWatch:
		d.state = StateContact
	case StateProblem:
		d.state = StateWatch
	default:
		return ErrInvalidTransition
	}

	return nil
}

// Submit validates step 3, composes the labelled message and fires the one
// outbound request of the whole wizard. Success is terminal; failure leaves
// the draft in StateFailed with every value preserved for a retry.
func (d *Draft) Submit(ctx context.Context, gateway Gateway, subject string, reference string) error {
	if d.state != StateProblem {
		return ErrInvalidTransition
	}

	if err := d.record(ValidateProblem(d.Problem)); err != nil {
		return err
	}

	d.state = StateSubmitting

	err := gateway.Submit(ctx, Submission{
		Subject: subject,
		Name:    strings.TrimSpace(d.Contact.Name),
		Email:   strings.TrimSpace(d.Contact.Email),
		Message: d.composeMessage(reference),
	})
	if err != nil {
		d.state = StateFailed
		return err
	}

	d.state = StateSubmitted

	return nil
}

// Retry brings a failed draft back to step 3 so the customer can submit
// again.
func (d *Draft) Retry() error {
	if d.state != StateFailed {
		return ErrInvalidTransition
	}

	d.state = StateProblem

	return nil
}

func (d *Draft) record(err error) error {
	if err == nil {
		d.fieldErrors = nil
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		d.fieldErrors = appErr.Fields
	}

	return err
}
