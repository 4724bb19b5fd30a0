// Package client calls a running oasis API server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/papercomputeco/oasis/pkg/greeter"
)

const defaultTimeout = 10 * time.Second

// Client is a thin HTTP client for the oasis API.
type Client struct {
	target     *url.URL
	httpClient *http.Client
}

// New creates a client for the API server at target
// (e.g. "http://localhost:8080"). A nil httpClient uses a client with a
// ten second timeout.
func New(target string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid API target URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API target URL: %q", target)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{target: u, httpClient: httpClient}, nil
}

// Greeting calls GET /greeting.
func (c *Client) Greeting(ctx context.Context, name string) (*greeter.Greeting, error) {
	var out greeter.Greeting
	if err := c.getJSON(ctx, "/greeting", name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Greetings calls GET /greetings.
func (c *Client) Greetings(ctx context.Context, name string) ([]greeter.Greeting, error) {
	var out []greeter.Greeting
	if err := c.getJSON(ctx, "/greetings", name, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Emoji calls GET /emoji, which answers in plain text.
func (c *Client) Emoji(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/emoji", "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Emojis calls GET /emojis.
func (c *Client) Emojis(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "/emojis", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path, name string, out any) error {
	body, err := c.get(ctx, path, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, name string) ([]byte, error) {
	u := *c.target
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if name != "" {
		q := u.Query()
		q.Set("name", name)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to oasis API at %s: %w", c.target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s request failed (HTTP %d): %s", path, resp.StatusCode, apiError(body))
	}
	return body, nil
}

// apiError extracts the message from an {"error": ...} body, falling back to
// the raw body.
func apiError(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return string(body)
}
