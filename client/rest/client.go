// Package rest is the typed client for the storefront backend consumed by
// the client-side state containers.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/montluxe/storefront/pkg/errors"
)

const responseBodyReadLimit int64 = 1024

var errBaseURLRequired = errors.New("base url is required")

// Client talks to the storefront REST API. It performs no retries; callers
// decide how to present failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds a client for the given API base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// LoginResult carries the identity returned by a successful login. Fields
// the backend returns beyond the known ones are preserved in Claims.
type LoginResult struct {
	UserID      string
	Username    string
	AccessToken string
	Claims      map[string]any
}

// Login authenticates and returns the issued identity. A rejected
// credential pair surfaces as an unauthorized error; transport failures as
// dependency errors.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("login"), bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute login request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp, "login request failed")
	}

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode login response")
	}

	result := &LoginResult{Claims: map[string]any{}}
	for key, value := range envelope.Data {
		switch key {
		case "user_id":
			result.UserID = fmt.Sprint(value)
		case "access_token":
			result.AccessToken = fmt.Sprint(value)
		case "user":
			if user, ok := value.(map[string]any); ok {
				if name, ok := user["username"].(string); ok {
					result.Username = name
				}
			}
			result.Claims[key] = value
		default:
			result.Claims[key] = value
		}
	}
	if result.UserID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "login response missing user_id")
	}
	return result, nil
}

// DeleteUser removes the account. The bearer token must belong to the user
// being deleted.
func (c *Client) DeleteUser(ctx context.Context, userID, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.buildURL("users/"+url.PathEscape(userID)), nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build delete request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute delete request")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "not authorized to delete account")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return statusError(resp, "delete request failed")
	}
	return nil
}

// Product is one catalog listing as served by the backend.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	ImageURL   string `json:"image_url"`
	Href       string `json:"href"`
}

// Products fetches the catalog.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var envelope struct {
		Data struct {
			Products []Product `json:"products"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "products", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Products, nil
}

// Category is one navigation category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories fetches the navigation categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var envelope struct {
		Data struct {
			Categories []Category `json:"categories"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "api/categories", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Categories, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path), nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode response")
	}
	return nil
}

func (c *Client) buildURL(path string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))
}

func statusError(resp *http.Response, msg string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	return pkgerrors.Wrap(
		pkgerrors.CodeDependency,
		fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		msg,
	)
}
