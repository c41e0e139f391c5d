// Package backend is the typed client for the remote restaurant API. Every
// screen goes through it; response shapes are validated here at the boundary
// instead of being duck-typed per screen.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"rms-web/internal/domain"
	"rms-web/internal/listing"
)

// HTTPClient lets tests swap the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNoToken means an authenticated call was attempted without a session
// token. No request is sent in that case.
var ErrNoToken = errors.New("backend: no auth token")

// APIError is a non-2xx answer from the remote API with its body text
// captured for inline display.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: api responded %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func New(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// page is the listing envelope every paginated endpoint wraps results in.
type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func (p page[T]) meta() domain.Page {
	return domain.Page{Count: p.Count, Next: p.Next, Previous: p.Previous}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s: %w", path, err)
	}
	return nil
}

// Login exchanges credentials for an auth token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var result struct {
		AuthToken string `json:"auth_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/token/login", nil, "", body, &result); err != nil {
		return "", err
	}
	if result.AuthToken == "" {
		return "", fmt.Errorf("backend: login response missing auth_token")
	}
	return result.AuthToken, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/users/", nil, "", body, nil)
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context, token string) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if token == "" {
		return profile, ErrNoToken
	}
	err := c.do(ctx, http.MethodGet, "/auth/users/me", nil, token, nil, &profile)
	return profile, err
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, domain.Page, error) {
	var envelope page[domain.Category]
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, "", nil, &envelope); err != nil {
		return nil, domain.Page{}, err
	}
	return envelope.Results, envelope.meta(), nil
}

// MenuItems runs one listing request for the given filter state.
func (c *Client) MenuItems(ctx context.Context, q listing.Query) ([]domain.MenuItem, domain.Page, error) {
	var envelope page[domain.MenuItem]
	if err := c.do(ctx, http.MethodGet, "/api/menu-items", q.Values(), "", nil, &envelope); err != nil {
		return nil, domain.Page{}, err
	}
	return envelope.Results, envelope.meta(), nil
}

func (c *Client) MenuItem(ctx context.Context, id int) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := c.do(ctx, http.MethodGet, "/api/menu-items/"+strconv.Itoa(id), nil, "", nil, &item)
	return item, err
}

func (c *Client) Reviews(ctx context.Context, menuItemID int) ([]domain.Review, domain.Page, error) {
	var envelope page[domain.Review]
	path := "/api/menu-items/" + strconv.Itoa(menuItemID) + "/reviews"
	if err := c.do(ctx, http.MethodGet, path, nil, "", nil, &envelope); err != nil {
		return nil, domain.Page{}, err
	}
	return envelope.Results, envelope.meta(), nil
}

func (c *Client) CreateReview(ctx context.Context, token string, menuItemID, rating int, comment string) (domain.Review, error) {
	var review domain.Review
	if token == "" {
		return review, ErrNoToken
	}
	body := map[string]any{
		"rating":    rating,
		"comment":   comment,
		"menu_item": menuItemID,
	}
	path := "/api/menu-items/" + strconv.Itoa(menuItemID) + "/reviews"
	err := c.do(ctx, http.MethodPost, path, nil, token, body, &review)
	return review, err
}

func (c *Client) CartItems(ctx context.Context, token string) ([]domain.CartLine, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var envelope page[domain.CartLine]
	if err := c.do(ctx, http.MethodGet, "/api/cart/menu-items", nil, token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// AddCartItem posts a quantity for a menu item. The remote cart adds it to
// any existing line, so a quantity of +1/-1 acts as a delta.
func (c *Client) AddCartItem(ctx context.Context, token string, menuItemID, quantity int) error {
	if token == "" {
		return ErrNoToken
	}
	body := map[string]int{"menuitem_id": menuItemID, "quantity": quantity}
	return c.do(ctx, http.MethodPost, "/api/cart/menu-items", nil, token, body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, token string, menuItemID int) error {
	if token == "" {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodDelete, "/api/cart/menu-items/"+strconv.Itoa(menuItemID)+"/", nil, token, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodDelete, "/api/cart/menu-items", nil, token, nil, nil)
}

// CreateOrder turns the server-side cart into an order. bonusUsed and tip may
// both be zero, which matches the plain "order everything" flow.
func (c *Client) CreateOrder(ctx context.Context, token string, bonusUsed, tip decimal.Decimal) (domain.OrderReceipt, error) {
	var receipt domain.OrderReceipt
	if token == "" {
		return receipt, ErrNoToken
	}
	body := map[string]decimal.Decimal{
		"bonus_used": bonusUsed,
		"tip":        tip,
	}
	err := c.do(ctx, http.MethodPost, "/api/orders", nil, token, body, &receipt)
	return receipt, err
}

func (c *Client) Orders(ctx context.Context, token string) ([]domain.Order, domain.Page, error) {
	if token == "" {
		return nil, domain.Page{}, ErrNoToken
	}
	var envelope page[domain.Order]
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, token, nil, &envelope); err != nil {
		return nil, domain.Page{}, err
	}
	return envelope.Results, envelope.meta(), nil
}

func (c *Client) Order(ctx context.Context, token string, id int) (domain.Order, error) {
	var order domain.Order
	if token == "" {
		return order, ErrNoToken
	}
	err := c.do(ctx, http.MethodGet, "/api/orders/"+strconv.Itoa(id), nil, token, nil, &order)
	return order, err
}

// OrderUpdate is a requested transition; both fields are optional and the
// server stays authoritative over what actually changes.
type OrderUpdate struct {
	Status       *domain.OrderStatus `json:"status,omitempty"`
	DeliveryCrew *int                `json:"delivery_crew,omitempty"`
}

func (c *Client) UpdateOrder(ctx context.Context, token string, id int, update OrderUpdate) (domain.Order, error) {
	var order domain.Order
	if token == "" {
		return order, ErrNoToken
	}
	err := c.do(ctx, http.MethodPut, "/api/orders/"+strconv.Itoa(id), nil, token, update, &order)
	return order, err
}

func (c *Client) Reservations(ctx context.Context, token string) ([]domain.Reservation, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var envelope page[domain.Reservation]
	if err := c.do(ctx, http.MethodGet, "/api/reservations", nil, token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

func (c *Client) CreateReservation(ctx context.Context, token string, reservation domain.Reservation) (domain.Reservation, error) {
	if token == "" {
		return domain.Reservation{}, ErrNoToken
	}
	var created domain.Reservation
	err := c.do(ctx, http.MethodPost, "/api/reservations", nil, token, reservation, &created)
	return created, err
}

// DeliveryCrew lists the users eligible for order assignment. The endpoint
// answers a plain array, not a pagination envelope.
func (c *Client) DeliveryCrew(ctx context.Context, token string) ([]domain.CrewMember, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var crew []domain.CrewMember
	if err := c.do(ctx, http.MethodGet, "/api/groups/delivery-crew/users", nil, token, nil, &crew); err != nil {
		return nil, err
	}
	return crew, nil
}
