package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lesrhabilleurs/atelier-backend/internal/apperror"
	"github.com/lesrhabilleurs/atelier-backend/internal/quote"
	mockquote "github.com/lesrhabilleurs/atelier-backend/internal/quote/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const Subject = "Nouvelle demande de devis"

var ErrUnexpected = errors.New("unexpected error")

func validRequest() quote.Request {
	return quote.Request{
		Contact: quote.ContactInfo{Name: "Jean Dupont", Email: "jean@example.ch", Phone: "+41 79 000 00 00"},
		Watch:   quote.WatchInfo{Brand: "Omega", Model: "Speedmaster", Type: quote.WatchTypeAutomatic},
		Problem: quote.ProblemInfo{Description: "le chronographe ne se remet plus à zéro"},
	}
}

func TestSubmit(t *testing.T) {
	type mockBehavior func(mockGateway *mockquote.MockGateway)

	tests := []struct {
		name             string
		request          quote.Request
		mockBehavior     mockBehavior
		expectedError    error
		expectValidation bool
	}{
		{
			name:    "success",
			request: validRequest(),
			mockBehavior: func(mockGateway *mockquote.MockGateway) {
				mockGateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "invalid contact info never reaches the gateway",
			request: quote.Request{
				Contact: quote.ContactInfo{Name: "Jean Dupont", Email: "invalid"},
				Watch:   quote.WatchInfo{Brand: "Omega", Type: quote.WatchTypeAutomatic},
				Problem: quote.ProblemInfo{Description: "le verre est fissuré"},
			},
			mockBehavior:     func(mockGateway *mockquote.MockGateway) {},
			expectValidation: true,
		},
		{
			name: "short problem description never reaches the gateway",
			request: quote.Request{
				Contact: quote.ContactInfo{Name: "Jean Dupont", Email: "jean@example.ch"},
				Watch:   quote.WatchInfo{Brand: "Omega", Type: quote.WatchTypeAutomatic},
				Problem: quote.ProblemInfo{Description: "cassée"},
			},
			mockBehavior:     func(mockGateway *mockquote.MockGateway) {},
			expectValidation: true,
		},
		{
			name:    "gateway failure maps to gateway error",
			request: validRequest(),
			mockBehavior: func(mockGateway *mockquote.MockGateway) {
				mockGateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(ErrUnexpected)
			},
			expectedError: apperror.ErrGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGateway := mockquote.NewMockGateway(ctrl)
			tt.mockBehavior(mockGateway)

			service := New(mockGateway, Subject, zap.NewNop())

			receipt, err := service.Submit(context.Background(), tt.request)

			switch {
			case tt.expectedError != nil:
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, receipt)
			case tt.expectValidation:
				require.Error(t, err)
				var appErr *apperror.AppError
				require.ErrorAs(t, err, &appErr)
				assert.NotEmpty(t, appErr.Fields)
				assert.Nil(t, receipt)
			default:
				require.NoError(t, err)
				require.NotNil(t, receipt)
				_, parseErr := uuid.Parse(receipt.ID)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestSubmitPassesSubjectAndReferenceToGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var captured quote.Submission
	mockGateway := mockquote.NewMockGateway(ctrl)
	mockGateway.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, submission quote.Submission) error {
			captured = submission
			return nil
		})

	service := New(mockGateway, Subject, zap.NewNop())

	receipt, err := service.Submit(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, Subject, captured.Subject)
	assert.Contains(t, captured.Message, "Référence: "+receipt.ID)
	assert.Contains(t, captured.Message, "Téléphone: +41 79 000 00 00")
}

func TestValidateStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(mockquote.NewMockGateway(ctrl), Subject, zap.NewNop())

	req := quote.Request{
		Watch: quote.WatchInfo{Brand: "Omega", Type: quote.WatchTypeQuartz},
	}

	assert.NoError(t, service.ValidateStep(context.Background(), 2, req))
	assert.Error(t, service.ValidateStep(context.Background(), 1, req))
	assert.ErrorIs(t, service.ValidateStep(context.Background(), 5, req), quote.ErrUnknownStep)
}
