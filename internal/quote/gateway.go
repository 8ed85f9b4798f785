package quote

import "context"

//go:generate mockgen -source=gateway.go -destination=mocks/mock.go -package=mockquote

// Submission is the payload handed to the external form relay.
type Submission struct {
	Subject string
	Name    string
	Email   string
	Message string
}

// Gateway delivers a composed quote request to the form relay. A nil error
// means the relay acknowledged the submission; any other outcome, transport
// failure included, is an error.
type Gateway interface {
	Submit(ctx context.Context, submission Submission) error
}
