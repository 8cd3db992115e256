// Package api provides the HTTP/JSON client of the Expense Store.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spend/internal/core"
	"spend/internal/store"
)

// Client talks to the Expense Store API. It implements the store ports.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the store at baseURL. A nil httpClient gets
// a default with a request timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// envelope is the store's uniform response shape. Every response carries
// success; on false either error or errors is set.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

// expenseBody is the request shape for create and update.
type expenseBody struct {
	Amount   core.Money `json:"amount"`
	Date     core.Date  `json:"date"`
	Note     string     `json:"note"`
	Category string     `json:"category"`
}

func (c *Client) ListExpenses(ctx context.Context, f core.Filter) ([]core.Expense, error) {
	var out []core.Expense
	if err := c.do(ctx, http.MethodGet, "/api/expenses", f.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	var out core.Expense
	err := c.do(ctx, http.MethodGet, "/api/expenses/"+strconv.FormatInt(id, 10), nil, nil, &out)
	return out, err
}

func (c *Client) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	var out core.Expense
	err := c.do(ctx, http.MethodPost, "/api/expenses", nil, bodyFor(e), &out)
	return out, err
}

func (c *Client) UpdateExpense(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
	var out core.Expense
	err := c.do(ctx, http.MethodPut, "/api/expenses/"+strconv.FormatInt(id, 10), nil, bodyFor(e), &out)
	return out, err
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/expenses/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]core.Category, error) {
	var out []core.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReadSummary(ctx context.Context, groupBy core.GroupBy, f core.Filter) (core.Summary, error) {
	query := f.Values()
	query.Set("group_by", string(groupBy))
	var out core.Summary
	err := c.do(ctx, http.MethodGet, "/api/reports/summary", query, nil, &out)
	return out, err
}

func bodyFor(e core.Expense) expenseBody {
	return expenseBody{
		Amount:   e.Amount,
		Date:     e.Date,
		Note:     e.Note,
		Category: e.Category,
	}
}

// do performs one request and unwraps the response envelope. A success=false
// envelope becomes a *store.Error carrying the store's messages; everything
// else that goes wrong is a transport failure.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode envelope (status %d): %w", method, path, resp.StatusCode, err)
	}
	if !env.Success {
		msgs := env.Errors
		if len(msgs) == 0 && env.Error != "" {
			msgs = []string{env.Error}
		}
		if len(msgs) == 0 {
			// Malformed envelope: no success, no message. Treat as
			// transport failure, not as empty data.
			return fmt.Errorf("%s %s: malformed envelope (status %d)", method, path, resp.StatusCode)
		}
		return &store.Error{Messages: msgs}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}
