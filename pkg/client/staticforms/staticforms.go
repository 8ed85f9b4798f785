package staticforms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lesrhabilleurs/atelier-backend/internal/logging"
	"github.com/lesrhabilleurs/atelier-backend/internal/quote"
	"go.uber.org/zap"
)

type Config struct {
	Endpoint  string
	AccessKey string
	Timeout   time.Duration
}

// Client posts quote submissions to a staticforms-style relay. Success is
// purely status-driven; no response body contract is relied upon.
type Client struct {
	httpClient *http.Client
	endpoint   string
	accessKey  string
	logger     *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		accessKey:  cfg.AccessKey,
		logger:     logger,
	}
}

type payload struct {
	AccessKey string `json:"accessKey"`
	Subject   string `json:"subject"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

func (c *Client) Submit(ctx context.Context, submission quote.Submission) error {
	body, err := json.Marshal(payload{
		AccessKey: c.accessKey,
		Subject:   submission.Subject,
		Name:      submission.Name,
		Email:     submission.Email,
		Message:   submission.Message,
	})
	if err != nil {
		return fmt.Errorf("unable to encode submission: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("unable to build relay request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logging.LogOutboundRequest(c.logger, http.MethodPost, c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	return nil
}
