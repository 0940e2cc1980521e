package vk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "https://api.vk.com/method"
	defaultAPIVersion = "5.126"
	defaultTimeout    = 30 * time.Second
)

// Client is a VK API client for the read-only endpoints used by reports.
// It carries the access token, so one Client represents one session.
type Client struct {
	baseURL     string
	apiVersion  string
	accessToken string
	timeout     time.Duration
	httpClient  *http.Client
}

// ClientOption is a function that configures the Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithAPIVersion sets the API version
func WithAPIVersion(version string) ClientOption {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithHTTPClient sets a custom HTTP client. The client is used as is, WithTimeout
// does not change it.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the HTTP client built by New
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a new VK API client authenticated with accessToken
func New(accessToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		apiVersion:  defaultAPIVersion,
		accessToken: accessToken,
		timeout:     defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// ErrRemoteAPI matches every error returned by Client methods
var ErrRemoteAPI = errors.New("vk API request failed")

// APIError represents an error envelope returned by the VK API
type APIError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vk API error: %s (code: %d)", e.Message, e.Code)
}

// RemoteError wraps any failure of a remote call with the method name
type RemoteError struct {
	Method string
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is reports ErrRemoteAPI as a match so callers need not know the concrete type
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteAPI
}

// envelope is the common VK response wrapper
type envelope struct {
	Response json.RawMessage `json:"response"`
	Error    *APIError       `json:"error"`
}

// call executes a GET request against a VK method and decodes the response field into out
func (c *Client) call(ctx context.Context, method string, params url.Values, out interface{}) error {
	if err := c.do(ctx, method, params, out); err != nil {
		return &RemoteError{Method: method, Err: err}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, params url.Values, out interface{}) error {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, method)

	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.accessToken)
	params.Set("v", c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if env.Error != nil {
		return env.Error
	}
	if len(env.Response) == 0 {
		return errors.New("response field is missing")
	}

	if out != nil {
		if err := json.Unmarshal(env.Response, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
