package mspmanager

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultBaseURL is the MSP Manager OData endpoint
	DefaultBaseURL = "https://api.mspmanager.com/odata"

	// DefaultFetchTop caps the unfiltered time-entry fetch. Date windowing is
	// applied client-side, so the cap has to be large enough to cover the
	// deepest selectable pay period.
	DefaultFetchTop = 10000

	// DefaultTimeout bounds a single upstream call
	DefaultTimeout = 30 * time.Second
)

// Client is an authenticated MSP Manager OData API client. It implements
// interfaces.DataSource.
type Client struct {
	baseURL    string
	apiKey     string
	fetchTop   int
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithFetchTop overrides the unfiltered fetch cap
func WithFetchTop(top int) Option {
	return func(c *Client) {
		c.fetchTop = top
	}
}

// WithTimeout overrides the per-call timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a Client for the given endpoint and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		fetchTop:   DefaultFetchTop,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// query carries the OData system options of one entity read.
type query struct {
	top     int
	sel     string
	orderBy string
	filter  string
}

// envelope is the OData collection response wrapper.
type envelope struct {
	Value []json.RawMessage `json:"value"`
}

// fetchEntities performs a single authenticated GET against an OData entity
// and returns the raw records of the "value" array.
func (c *Client) fetchEntities(ctx context.Context, entity string, q query) ([]json.RawMessage, error) {
	params := url.Values{}
	if q.top > 0 {
		params.Set("$top", strconv.Itoa(q.top))
	}
	if q.sel != "" {
		params.Set("$select", q.sel)
	}
	if q.orderBy != "" {
		params.Set("$orderby", q.orderBy)
	}
	if q.filter != "" {
		params.Set("$filter", q.filter)
	}

	endpoint := c.baseURL + "/" + entity + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build upstream request",
			goerr.V("entity", entity))
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "upstream request failed",
			goerr.V("entity", entity))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read upstream response",
			goerr.V("entity", entity))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("upstream returned non-OK status",
			goerr.V("entity", entity),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, goerr.Wrap(err, "failed to decode upstream response",
			goerr.V("entity", entity))
	}
	return env.Value, nil
}

// parseUpstreamTime parses the timestamp formats the OData API emits. The
// zero time signals an unusable value; callers drop such records instead of
// failing the whole fetch.
func parseUpstreamTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
