package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pradeepkasula/online-shopping-cart/internal/logger"

	"go.uber.org/zap"
)

// Client is the typed wrapper around the remote product service. It is the
// sole source of truth for price and stock; one Client is constructed at
// process start and shared by the cart and order services.
type Client interface {
	FetchProduct(ctx context.Context, productID string) (*Product, error)
	IsAvailable(ctx context.Context, productID string, quantity int) bool
	Deduct(ctx context.Context, productID string, quantity int) error
}

type client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a product service client. timeout bounds every single
// HTTP call; a timed-out call surfaces as ErrUnavailable, never retried here.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchProduct returns the product record, ErrProductNotFound when the
// authority reports no such product, or ErrUnavailable when the call itself
// failed. Callers that only need soft not-found semantics (cart reads) treat
// both failures the same way.
func (c *client) FetchProduct(ctx context.Context, productID string) (*Product, error) {
	u := fmt.Sprintf("%s/api/products/%s", c.baseURL, url.PathEscape(productID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch product",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		logger.FromCtx(ctx).Error("unexpected product service response",
			zap.String("product_id", productID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decode product: %v", ErrUnavailable, err)
	}

	return &p, nil
}

// IsAvailable asks the authority whether stock >= quantity. Any failure is
// reported as false: callers treat "could not verify" and "not enough stock"
// identically.
func (c *client) IsAvailable(ctx context.Context, productID string, quantity int) bool {
	u := fmt.Sprintf("%s/api/products/%s/available?quantity=%s",
		c.baseURL, url.PathEscape(productID), strconv.Itoa(quantity))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to check availability",
			zap.String("product_id", productID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var available bool
	if err := json.NewDecoder(resp.Body).Decode(&available); err != nil {
		return false
	}

	return available
}

type stockUpdateRequest struct {
	Stock int `json:"stock"`
}

// Deduct reads the current stock, subtracts quantity and writes the absolute
// new value back. The read and the write are two separate calls against the
// authority with no lock between them, so concurrent deductions can race;
// the authority's PUT endpoint is the only write primitive it offers.
// Deduct is not idempotent: retrying a timed-out call can double-deduct.
func (c *client) Deduct(ctx context.Context, productID string, quantity int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
	)

	product, err := c.FetchProduct(ctx, productID)
	if err != nil {
		return err
	}

	newStock := product.Stock - quantity
	if newStock < 0 {
		return fmt.Errorf("%w: product %s has %d, need %d",
			ErrInsufficientStock, productID, product.Stock, quantity)
	}

	body, err := json.Marshal(stockUpdateRequest{Stock: newStock})
	if err != nil {
		return fmt.Errorf("%w: encode stock update: %v", ErrUnavailable, err)
	}

	u := fmt.Sprintf("%s/api/products/%s/stock", c.baseURL, url.PathEscape(productID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("failed to update stock", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("unexpected stock update response", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	log.Info("stock deducted", zap.Int("new_stock", newStock))
	return nil
}
