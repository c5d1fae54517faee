package fortniteapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public Fortnite API v2 root
const DefaultBaseURL = "https://fortnite-api.com/v2"

// StatusOK is the status field value the upstream reports on success
const StatusOK = 200

// maxBodySize caps how much of a response body is read
const maxBodySize = 4 << 20

var (
	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = errors.New("fortnite api key is not configured")
	// ErrInvalidResponse is returned when the body is not a JSON envelope
	ErrInvalidResponse = errors.New("invalid fortnite api response")
)

// Fetcher issues one request against the Fortnite API
type Fetcher interface {
	Get(ctx context.Context, req Request) (*Response, error)
}

// Request is the endpoint path and query of one upstream call
type Request struct {
	Path  string
	Query url.Values
}

// Response is the JSON envelope every endpoint answers with
type Response struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// OK reports whether the upstream signalled success
func (r *Response) OK() bool {
	return r != nil && r.Status == StatusOK
}

// HasData reports whether the data field is present and not empty
func (r *Response) HasData() bool {
	if r == nil {
		return false
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, r.Data); err != nil {
		return len(bytes.TrimSpace(r.Data)) > 0
	}
	switch compact.String() {
	case "", "null", "{}", "[]", `""`:
		return false
	}
	return true
}

// DecodeData unmarshals the data field into v
func (r *Response) DecodeData(v any) error {
	if !r.HasData() {
		return fmt.Errorf("%w: empty data", ErrInvalidResponse)
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// Client talks to the Fortnite API over HTTP
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a client. A nil httpClient gets one with the given timeout.
func NewClient(httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Get performs a single GET and decodes the envelope. The envelope status is
// returned as-is; callers decide what a non-200 status means.
func (c *Client) Get(ctx context.Context, req Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	reqURL := c.buildRequestURL(req)
	httpReq, err := c.newRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fortnite api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read fortnite api response: %w", err)
	}

	log.WithFields(log.Fields{
		"path":        req.Path,
		"http_status": resp.StatusCode,
		"duration":    time.Since(start),
	}).Debug("Fortnite API request completed")

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: http %d: %v", ErrInvalidResponse, resp.StatusCode, err)
	}
	return &envelope, nil
}

func (c *Client) buildRequestURL(req Request) string {
	reqURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}
	return reqURL
}

func (c *Client) newRequest(ctx context.Context, reqURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.apiKey)
	return req, nil
}
