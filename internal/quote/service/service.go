package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/quote"
	"go.uber.org/zap"
)

type service struct {
	gateway quote.Gateway
	subject string
	logger  *zap.Logger
}

func New(
	gateway quote.Gateway,
	subject string,
	logger *zap.Logger,
) *service {
	return &service{
		gateway: gateway,
		subject: subject,
		logger:  logger,
	}
}

// Submit runs a complete payload through the wizard: every forward
// transition re-validates its own step, then the draft fires the single
// outbound relay request. The generated reference identifies the request in
// the mail the workshop receives.
func (s *service) Submit(ctx context.Context, req quote.Request) (*quote.Receipt, error) {
	draft := quote.NewDraft()

	draft.Contact = req.Contact
	if err := draft.Next(); err != nil {
		return nil, err
	}

	draft.Watch = req.Watch
	if err := draft.Next(); err != nil {
		return nil, err
	}

	draft.Problem = req.Problem

	reference := uuid.NewString()

	if err := draft.Submit(ctx, s.gateway, s.subject, reference); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// step 3 validation failure, nothing left the machine
			return nil, err
		}

		s.logger.Error(
			"quote delivery failed",
			zap.Error(err),
			zap.String("reference", reference),
		)

		return nil, apperror.ErrGateway
	}

	return &quote.Receipt{ID: reference}, nil
}

// ValidateStep checks one wizard step in isolation. The client calls it to
// gate forward navigation without submitting anything.
func (s *service) ValidateStep(ctx context.Context, step int, req quote.Request) error {
	return quote.ValidateStep(step, req)
}
