// Package api implements the HTTP client for the FinLedger backend. It
// attaches the session token as a bearer header and translates transport
// and status failures into the client error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// User is the public user view returned by the backend. It never carries
// the password hash.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Expense mirrors the backend spending record.
type Expense struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	SpentAt   time.Time `json:"spent_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Investment mirrors the backend holding record.
type Investment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	InvestedAt time.Time `json:"invested_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// envelope is the uniform response shape of the auth endpoints.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

// Client talks to the backend over HTTP. The token is shared state: the
// session layer sets it after login or resolve, and every protected call
// attaches it. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs the token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the installed token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// do sends one JSON request and decodes the response into out (if non-nil).
// Transport failures map to ErrUnavailable, 401 to ErrUnauthorized; any
// other non-2xx status surfaces the server's message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		if jsonErr := json.Unmarshal(data, &env); jsonErr == nil && env.Message != "" {
			return fmt.Errorf("%w: %s", ErrRequestFailed, env.Message)
		}
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Register creates an account. No token is issued; the caller logs in
// afterwards.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// Login exchanges credentials for a session token and the public user view.
// The token is not installed on the client; the session layer decides
// whether to keep it.
func (c *Client) Login(ctx context.Context, email, password string) (string, *User, error) {
	body := map[string]string{"email": email, "password": password}

	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &env); err != nil {
		return "", nil, err
	}
	if env.Token == "" || env.User == nil {
		return "", nil, fmt.Errorf("%w: incomplete login response", ErrRequestFailed)
	}
	return env.Token, env.User, nil
}

// Validate asks the backend to verify the installed token and returns the
// user it identifies.
func (c *Client) Validate(ctx context.Context) (*User, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/validate", nil, &env); err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, fmt.Errorf("%w: empty validate response", ErrRequestFailed)
	}
	return env.User, nil
}

func (c *Client) ListExpenses(ctx context.Context) ([]*Expense, error) {
	var list []*Expense
	if err := c.do(ctx, http.MethodGet, "/api/expenses", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) AddExpense(ctx context.Context, title string, amount float64, category string) (*Expense, error) {
	body := map[string]any{"title": title, "amount": amount, "category": category}
	var e Expense
	if err := c.do(ctx, http.MethodPost, "/api/expenses", body, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/expenses/"+id, nil, nil)
}

func (c *Client) ListInvestments(ctx context.Context) ([]*Investment, error) {
	var list []*Investment
	if err := c.do(ctx, http.MethodGet, "/api/investments", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) AddInvestment(ctx context.Context, name, category string, amount float64) (*Investment, error) {
	body := map[string]any{"name": name, "category": category, "amount": amount}
	var inv Investment
	if err := c.do(ctx, http.MethodPost, "/api/investments", body, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) DeleteInvestment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/investments/"+id, nil, nil)
}
