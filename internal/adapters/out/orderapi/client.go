// Package orderapi is the HTTP client of the remote order backend.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"burger/internal/core/domain/model/order"
	"burger/internal/pkg/errs"
)

const (
	DefaultTimeout = 15 * time.Second

	ordersPath      = "orders"
	maxResponseSize = 1 << 20
)

var (
	// ErrOrderRejected is the fallback when the backend refuses an order without a message.
	ErrOrderRejected = errors.New("order was rejected by the backend")

	// ErrMalformedResponse is returned when the backend answer cannot be understood.
	ErrMalformedResponse = errors.New("order backend returned a malformed response")
)

// APIError is a refusal reported by the backend. Its message is the one the
// backend sent, suitable for display.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return ErrOrderRejected
}

type placeOrderRequest struct {
	Ingredients []string `json:"ingredients"`
}

type placeOrderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Name    string        `json:"name"`
	Order   *orderPayload `json:"order"`
}

type orderPayload struct {
	ID        string    `json:"_id"`
	Number    int       `json:"number"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Client implements ports.OrderGateway over HTTP.
//
// Example:
//
//	client, err := orderapi.NewClient("https://norma.nomoreparties.space/api",
//	    orderapi.WithTimeout(10*time.Second))
//	if err != nil {
//	    return err
//	}
//	rec, err := client.PlaceOrder(ctx, []string{bunID, cutletID})
type Client struct {
	ordersURL string
	http      *http.Client
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", fmt.Errorf("%q is not an absolute url", baseURL))
	}

	c := &Client{
		ordersURL: u.JoinPath(ordersPath).String(),
		http:      &http.Client{Timeout: DefaultTimeout},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "order_api")

	return c, nil
}

// PlaceOrder posts the ingredient ids and returns the placed order.
func (c *Client) PlaceOrder(ctx context.Context, ingredientIDs []string) (*order.Record, error) {
	body, err := json.Marshal(placeOrderRequest{Ingredients: ingredientIDs})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ordersURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "order request failed", "error", err)
		return nil, fmt.Errorf("order backend is unreachable: %w", err)
	}
	defer resp.Body.Close()

	var payload placeOrderResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload)

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if ok && decodeErr != nil {
		c.logger.WarnContext(ctx, "order reply is not readable", "status", resp.StatusCode, "error", decodeErr)
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr)
	}

	if !ok || !payload.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("%s (HTTP %d)", ErrOrderRejected.Error(), resp.StatusCode)
		}
		c.logger.WarnContext(ctx, "order rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	if payload.Order == nil {
		return nil, fmt.Errorf("%w: order is missing", ErrMalformedResponse)
	}

	name := payload.Order.Name
	if name == "" {
		name = payload.Name
	}

	rec, err := order.NewRecord(order.RecordParams{
		ID:            payload.Order.ID,
		Number:        payload.Order.Number,
		Name:          name,
		Status:        payload.Order.Status,
		IngredientIDs: ingredientIDs,
		CreatedAt:     payload.Order.CreatedAt,
		UpdatedAt:     payload.Order.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	c.logger.InfoContext(ctx, "order placed", "number", rec.Number())
	return rec, nil
}
