// Package posts reads placeholder posts over HTTP for the data-fetching demo.
package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/sidebyside/internal/model"
)

// Fetcher defines the reads the demo performs. *Client implements it.
type Fetcher interface {
	List(ctx context.Context, limit int) ([]model.Post, error)
	Get(ctx context.Context, id int) (model.Post, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	// DefaultBaseURL is the public placeholder API.
	DefaultBaseURL   = "https://jsonplaceholder.typicode.com"
	DefaultLimit     = 5
	defaultUserAgent = "sidebyside/0.1"
	defaultTimeout   = 5 * time.Second

	// MinPostID and MaxPostID bound the selectable post ids.
	MinPostID = 1
	MaxPostID = 100
)

// Client talks to the placeholder API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for baseURL. A zero timeout uses five seconds.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List returns the first limit posts.
func (c *Client) List(ctx context.Context, limit int) ([]model.Post, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	values := url.Values{}
	values.Set("_limit", strconv.Itoa(limit))
	rel := &url.URL{Path: "posts", RawQuery: values.Encode()}
	var payload []model.Post
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Get returns a single post.
func (c *Client) Get(ctx context.Context, id int) (model.Post, error) {
	if c == nil {
		return model.Post{}, fmt.Errorf("client is nil")
	}
	var payload model.Post
	if err := c.do(ctx, http.MethodGet, "posts/"+strconv.Itoa(id), &payload); err != nil {
		return model.Post{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL keeps any path prefix and makes it end in a slash so that
// relative references resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
