package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pricing"
	"github.com/GlebRadaev/rafflemart/pkg/clients"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

const (
	sessionsPath  = "/v1/checkout/sessions"
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Config struct {
	URL        string
	APIKey     string
	Currency   string
	SessionTTL time.Duration
}

type lineItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type sessionRequest struct {
	Reference     string     `json:"reference"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	ExpiresAt     int64      `json:"expires_at"`
	LineItems     []lineItem `json:"line_items"`
}

type sessionResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// Client opens hosted checkout sessions at the payment processor.
type Client struct {
	cfg    Config
	client clients.HTTPClientI
	clock  clock.Clock
	wait   func(ctx context.Context, d time.Duration) error
}

func New(cfg Config, client clients.HTTPClientI, clk clock.Clock) *Client {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &Client{
		cfg:    cfg,
		client: client,
		clock:  clk,
		wait:   sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// CreateSession charges the order total in minor units. The order number is
// sent as the idempotency key so retried requests open a single session.
func (c *Client) CreateSession(ctx context.Context, order *domain.Order) (*domain.PaymentSession, error) {
	expiresAt := c.clock.Now().Add(c.cfg.SessionTTL)
	body, err := json.Marshal(sessionRequest{
		Reference:     order.Number,
		Amount:        pricing.ToMinorUnits(order.TotalAmount),
		Currency:      c.cfg.Currency,
		CustomerEmail: order.Email,
		ExpiresAt:     expiresAt.Unix(),
		LineItems:     lineItems(order.Items),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+c.cfg.APIKey)
	headers.Set("Idempotency-Key", order.Number)

	url := c.cfg.URL + sessionsPath
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := c.client.Post(ctx, url, headers, body)
		if err != nil {
			lastErr = err
			if waitErr := c.backoff(ctx, order, attempt, retryInterval*time.Duration(attempt)); waitErr != nil {
				return nil, domain.Unavailable(waitErr, "create payment session")
			}
			continue
		}

		switch {
		case statusCode == http.StatusOK || statusCode == http.StatusCreated:
			return c.decodeSession(respBody, expiresAt)
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("processor rate limited the request")
			if waitErr := c.backoff(ctx, order, attempt, retryAfter(respHeaders, attempt)); waitErr != nil {
				return nil, domain.Unavailable(waitErr, "create payment session")
			}
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("processor responded with status %d", statusCode)
			if waitErr := c.backoff(ctx, order, attempt, retryInterval*time.Duration(attempt)); waitErr != nil {
				return nil, domain.Unavailable(waitErr, "create payment session")
			}
		default:
			zap.L().Error("processor rejected session", zap.Int("status", statusCode), zap.String("order", order.Number), zap.ByteString("body", respBody))
			return nil, domain.Unavailable(fmt.Errorf("processor responded with status %d", statusCode), "create payment session")
		}
	}
	return nil, domain.Unavailable(fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr), "create payment session")
}

func (c *Client) backoff(ctx context.Context, order *domain.Order, attempt int, d time.Duration) error {
	if attempt >= maxRetries {
		return nil
	}
	zap.L().Warn("payment session request failed, retrying",
		zap.String("order", order.Number),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", d),
	)
	return c.wait(ctx, d)
}

func (c *Client) decodeSession(respBody []byte, requestedExpiry time.Time) (*domain.PaymentSession, error) {
	var resp sessionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, domain.Unavailable(err, "parse payment session")
	}
	if resp.ID == "" || resp.URL == "" {
		return nil, domain.Unavailable(fmt.Errorf("session without id or url"), "parse payment session")
	}
	expiresAt := requestedExpiry
	if resp.ExpiresAt > 0 {
		expiresAt = time.Unix(resp.ExpiresAt, 0).UTC()
	}
	return &domain.PaymentSession{ID: resp.ID, URL: resp.URL, ExpiresAt: expiresAt}, nil
}

func retryAfter(headers http.Header, attempt int) time.Duration {
	if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return retryInterval * time.Duration(attempt)
}

func lineItems(items []domain.ValidatedLineItem) []lineItem {
	out := make([]lineItem, 0, len(items))
	for _, item := range items {
		out = append(out, lineItem{
			Name:       item.Name,
			Quantity:   item.PaidQuantity,
			UnitAmount: pricing.ToMinorUnits(item.UnitPrice),
		})
		if item.FreeQuantity > 0 {
			out = append(out, lineItem{
				Name:     item.Name + " (free)",
				Quantity: item.FreeQuantity,
			})
		}
	}
	return out
}
