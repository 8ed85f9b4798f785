package handler

import "github.com/lesrhabilleurs/atelier-backend/internal/quote"

// QuoteRequest is the flat wire shape of the wizard; the same body is sent
// to the step-validation endpoint and to the final submission.
type QuoteRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	WatchType          string `json:"watchType"`
	ProblemDescription string `json:"problemDescription"`
	PhotoLink          string `json:"photoLink"`
}

func (qr *QuoteRequest) ToDomain() *quote.Request {
	watchType := quote.WatchType(qr.WatchType)
	if watchType == "" {
		watchType = quote.WatchTypeAutomatic
	}

	return &quote.Request{
		Contact: quote.ContactInfo{
			Name:  qr.Name,
			Email: qr.Email,
			Phone: qr.Phone,
		},
		Watch: quote.WatchInfo{
			Brand:     qr.Brand,
			Model:     qr.Model,
			Type:      watchType,
			PhotoLink: qr.PhotoLink,
		},
		Problem: quote.ProblemInfo{
			Description: qr.ProblemDescription,
		},
	}
}

type QuoteResponse struct {
	Quote quote.Receipt `json:"quote"`
}

type StepValidResponse struct {
	Step  int  `json:"step"`
	Valid bool `json:"valid"`
}
