package apperror

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound   = NewAppError("not found")
	ErrDecodeBody = NewAppError("failed to decode request body")
	ErrGateway    = NewAppError("failed to deliver the request to the form relay")
)

type AppError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

// NewValidationErr flattens validator errors into one message and keeps a
// per-field map so clients can surface errors inline next to each input.
func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string
	fields := make(map[string]string)

	for _, err := range errs {
		var msg string

		switch err.ActualTag() {
		case "required":
			msg = fmt.Sprintf("field %s is a required field", err.Field())
		case "email":
			msg = fmt.Sprintf("field %s is not a valid email", err.Field())
		case "min":
			msg = fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param())
		case "oneof":
			msg = fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param())
		default:
			msg = fmt.Sprintf("field %s is not valid", err.Field())
		}

		errMsgs = append(errMsgs, msg)
		fields[strings.ToLower(err.Field())] = msg
	}

	appErr := NewAppError(strings.Join(errMsgs, ", "))
	appErr.Fields = fields

	return appErr
}

func internalError() *AppError {
	return NewAppError("internal error")
}
