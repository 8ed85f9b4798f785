package quote

import (
	"github.com/go-playground/validator/v10"
	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
)

var validate = validator.New()

var ErrUnknownStep = apperror.NewAppError("unknown wizard step")

// Validation is step-scoped on purpose: checking one step never re-checks
// the fields of another. Required fields are trimmed before length checks.

func ValidateContact(info ContactInfo) error {
	return validateStruct(info.trimmed())
}

func ValidateWatch(info WatchInfo) error {
	return validateStruct(info.trimmed())
}

func ValidateProblem(info ProblemInfo) error {
	return validateStruct(info.trimmed())
}

// ValidateStep checks a single wizard step (1..3) of req in isolation.
func ValidateStep(step int, req Request) error {
	switch step {
	case 1:
		return ValidateContact(req.Contact)
	case 2:
		return ValidateWatch(req.Watch)
	case 3:
		return ValidateProblem(req.Problem)
	default:
		return ErrUnknownStep
	}
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	return nil
}
