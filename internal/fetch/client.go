// internal/fetch/client.go
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yackko/userlist/internal/config"
	"github.com/yackko/userlist/types"
)

var (
	// ErrStatus is returned for any non-2xx response.
	ErrStatus = errors.New("fetch: unexpected HTTP status")
	// ErrNoResults is returned when the body has no "results" field.
	ErrNoResults = errors.New("fetch: response has no results")
)

// Source produces the user collection the list starts from.
type Source interface {
	Fetch(ctx context.Context) ([]types.User, error)
}

// Compile-time interface checks.
var (
	_ Source = (*Client)(nil)
	_ Source = (*FileSource)(nil)
)

// response is the envelope of the random-user API.
type response struct {
	Results *[]types.User `json:"results"`
	Error   string        `json:"error,omitempty"`
	Info    struct {
		Seed    string `json:"seed"`
		Results int    `json:"results"`
		Page    int    `json:"page"`
		Version string `json:"version"`
	} `json:"info"`
}

// Client fetches users from the random-user HTTP endpoint.
type Client struct {
	http     *http.Client
	endpoint string
	results  int
	seed     string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithResults sets how many users to request.
func WithResults(n int) Option {
	return func(c *Client) {
		c.results = n
	}
}

// WithSeed makes the endpoint return the same users on every call.
func WithSeed(seed string) Option {
	return func(c *Client) {
		c.seed = seed
	}
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: config.DefaultTimeout},
		endpoint: endpoint,
		results:  config.DefaultResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig builds the Source the config asks for: a file when Input is
// set, the HTTP endpoint otherwise.
func FromConfig(cfg *config.Config) Source {
	if cfg.Input != "" {
		return &FileSource{Path: cfg.Input}
	}
	return NewClient(cfg.Endpoint,
		WithResults(cfg.Results),
		WithSeed(cfg.Seed),
		WithTimeout(cfg.Timeout),
	)
}

// URL returns the request URL with the results and seed query parameters.
func (c *Client) URL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("fetch: parse endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(c.results))
	if c.seed != "" {
		q.Set("seed", c.seed)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch issues one GET and decodes the results in the order received.
func (c *Client) Fetch(ctx context.Context) ([]types.User, error) {
	target, err := c.URL()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: get %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s: %s", ErrStatus, resp.Status, strings.TrimSpace(string(body)))
	}
	return Decode(resp.Body)
}

// Decode parses a random-user API body.
func Decode(r io.Reader) ([]types.User, error) {
	var body response
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("fetch: decode response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("fetch: endpoint error: %s", body.Error)
	}
	if body.Results == nil {
		return nil, ErrNoResults
	}
	return *body.Results, nil
}

// FileSource reads a response previously saved from the endpoint.
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(ctx context.Context) ([]types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("fetch: open %s: %w", s.Path, err)
	}
	defer f.Close()
	users, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return users, nil
}
