package quote_test

import (
	"testing"

	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStepIsStepScoped(t *testing.T) {
	// step 2 passes even though step 1 is empty
	req := quote.Request{
		Watch: quote.WatchInfo{Brand: "Omega", Type: quote.WatchTypeAutomatic},
	}

	assert.NoError(t, quote.ValidateStep(2, req))
	assert.Error(t, quote.ValidateStep(1, req))
}

func TestValidateStepFieldErrors(t *testing.T) {
	req := quote.Request{
		Contact: quote.ContactInfo{Name: "J", Email: "invalid"},
	}

	err := quote.ValidateStep(1, req)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "email")
}

func TestValidateStepRejectsUnknownWatchType(t *testing.T) {
	req := quote.Request{
		Watch: quote.WatchInfo{Brand: "Omega", Type: quote.WatchType("digitale")},
	}

	err := quote.ValidateStep(2, req)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "type")
}

func TestValidateStepUnknownStep(t *testing.T) {
	assert.ErrorIs(t, quote.ValidateStep(4, quote.Request{}), quote.ErrUnknownStep)
}
