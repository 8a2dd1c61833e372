// Package shopdirectory resolves shop ownership and commission rates from the
// shop subsystem's HTTP API.
package shopdirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	maxRetryAfter = time.Second * 30
)

var ErrShopNotFound = &domain.Error{Code: domain.CodeNotFound, Message: "shop not found"}

type shopResponse struct {
	ID             int64           `json:"id"`
	SellerID       int64           `json:"seller_id"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

type Client struct {
	url           string
	client        clients.HTTPClientI
	maxRetries    int
	retryInterval time.Duration
}

func New(address string, client clients.HTTPClientI) *Client {
	return &Client{
		url:           address,
		client:        client,
		maxRetries:    maxRetries,
		retryInterval: retryInterval,
	}
}

// GetShop asks the shop subsystem for the shop's owner and commission rate.
// Transport errors, 5xx answers and rate limiting are retried; when retries
// run out the error is a transient failure.
func (c *Client) GetShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	url := c.url + "/api/shops/" + strconv.FormatInt(shopID, 10)

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := c.client.Get(ctx, url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			zap.L().Warn("shop directory request failed", zap.Int64("shop_id", shopID), zap.Int("attempt", attempt), zap.Error(err))
			if err := c.wait(ctx, c.backoff(attempt)); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case statusCode == http.StatusOK:
			return parseShop(shopID, respBody)
		case statusCode == http.StatusNotFound:
			return nil, ErrShopNotFound
		case statusCode == http.StatusTooManyRequests:
			retryAfter := c.retryAfter(respHeaders, attempt)
			zap.L().Warn("shop directory rate limit, retrying",
				zap.Int64("shop_id", shopID),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
			)
			if err := c.wait(ctx, retryAfter); err != nil {
				return nil, err
			}
		case statusCode >= http.StatusInternalServerError:
			zap.L().Warn("shop directory unavailable, retrying", zap.Int64("shop_id", shopID), zap.Int("status", statusCode))
			if err := c.wait(ctx, c.backoff(attempt)); err != nil {
				return nil, err
			}
		default:
			zap.L().Error("unexpected status from shop directory", zap.Int64("shop_id", shopID), zap.Int("status", statusCode))
			return nil, fmt.Errorf("shop directory answered %d for shop %d", statusCode, shopID)
		}
	}

	zap.L().Error("shop directory retries exhausted", zap.Int64("shop_id", shopID), zap.Int("retries", c.maxRetries))
	return nil, fmt.Errorf("shop directory: %w", domain.ErrTransientFailure)
}

func parseShop(shopID int64, respBody []byte) (*domain.Shop, error) {
	var response shopResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse shop response: %w", err)
	}
	if response.ID != shopID {
		return nil, fmt.Errorf("shop id mismatch: expected %d, got %d", shopID, response.ID)
	}
	if response.SellerID <= 0 {
		return nil, fmt.Errorf("shop %d has no seller", shopID)
	}
	return &domain.Shop{
		ID:             response.ID,
		SellerID:       response.SellerID,
		CommissionRate: response.CommissionRate,
	}, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	return c.retryInterval * time.Duration(attempt)
}

func (c *Client) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := c.backoff(attempt)
	if seconds, err := strconv.Atoi(respHeaders.Get("Retry-After")); err == nil && seconds >= 0 {
		retryAfter = time.Duration(seconds) * time.Second
	}
	if retryAfter > maxRetryAfter {
		retryAfter = maxRetryAfter
	}
	return retryAfter
}

func (c *Client) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
