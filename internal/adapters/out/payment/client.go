package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrBaseURLIsRequired is returned when the client is created without a
// provider URL.
var ErrBaseURLIsRequired = errors.New("payment provider base URL is required")

const defaultTimeout = 10 * time.Second

// Client talks to the payment provider's refund endpoint. It implements
// ports.PaymentGateway.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a payment gateway client for the provider at baseURL.
// The API key is sent as a bearer token; it may be empty for providers
// behind a private network.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrBaseURLIsRequired
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

type refundRequest struct {
	PaymentReference string `json:"payment_reference"`
	Amount           int64  `json:"amount"`
}

// Refund requests a refund of amount (minor currency units) for the
// payment identified by paymentReference. Any non-2xx response is an
// error; the caller decides whether to retry.
func (c *Client) Refund(ctx context.Context, paymentReference string, amount int64) error {
	payload, err := json.Marshal(refundRequest{
		PaymentReference: paymentReference,
		Amount:           amount,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/refunds",
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	// Keep the provider's explanation, but never more than one line of it.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return fmt.Errorf("payment provider returned %d: %s", resp.StatusCode, message)
}
