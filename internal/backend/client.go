package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/domain"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the external cafe API over HTTP. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/token", "", body, &resp); err != nil {
		return "", err
	}

	return resp.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.Account, error) {
	var account domain.Account
	if err := c.do(ctx, http.MethodPost, "/register", "", req, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.Account, error) {
	var account domain.Account
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (c *Client) Menu(ctx context.Context) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	if err := c.do(ctx, http.MethodGet, "/menu", "", nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) PopularMenu(ctx context.Context) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	if err := c.do(ctx, http.MethodGet, "/menu/popular", "", nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, token string, item MenuItemInput) (*domain.CatalogItem, error) {
	var created domain.CatalogItem
	if err := c.do(ctx, http.MethodPost, "/menu", token, item, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, token string, id int, item MenuItemInput) (*domain.CatalogItem, error) {
	var updated domain.CatalogItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/menu/%d", id), token, item, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/menu/%d", id), token, nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, token string, order OrderRequest) (*domain.Order, error) {
	var created domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, order, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/me", token, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) AllOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", token, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int, status domain.OrderStatus) error {
	body := map[string]domain.OrderStatus{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", orderID), token, body, nil)
}

func (c *Client) Stats(ctx context.Context, token string) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", token, nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) errorFrom(resp *http.Response) error {
	var envelope struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: envelope.Detail}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, apiErr.Detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Detail)
	}

	return apiErr
}
