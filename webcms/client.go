package webcms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// AuthHeader is the header carrying the API key on every request.
const AuthHeader = "API-NUM"

// DefaultTimeout bounds each round trip. The API offers no per-call
// deadline, so this is the only limit on call duration.
const DefaultTimeout = 30 * time.Second

// Client talks to the WebCMS content API.
//
// The base URL and API key may be swapped at runtime through SetAPIURL
// and SetAPIKey; a mutex guards the configuration so a reconfiguration
// does not race with in-flight calls. Beyond that the client holds no
// state between calls.
type Client struct {
	mu         sync.Mutex
	baseURL    string
	apiKey     string
	header     http.Header
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new WebCMS client. The base URL is normalized to
// end in exactly one slash, and the auth header is derived from the key
// up front so every later request (and SetAPIKey) can rely on it being
// present.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("webcms URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("webcms API key is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set(AuthHeader, apiKey)
	if options.userAgent != "" {
		header.Set("User-Agent", options.userAgent)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    normalizeBaseURL(baseURL),
		apiKey:     apiKey,
		header:     header,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// normalizeBaseURL strips any trailing slashes and appends exactly one.
func normalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/") + "/"
}

// APIURL returns the normalized base URL.
func (c *Client) APIURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseURL
}

// SetAPIURL replaces the base URL, re-normalizing the trailing slash.
func (c *Client) SetAPIURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = normalizeBaseURL(u)
}

// APIKey returns the current API key.
func (c *Client) APIKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKey
}

// SetAPIKey replaces the API key and rewrites the auth header. The
// header exists from construction and Set replaces rather than
// searches, so a missing header cannot be skipped silently.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
	c.header.Set(AuthHeader, key)
}

// FetchContent retrieves web content entries matching the filter.
func (c *Client) FetchContent(ctx context.Context, filter ContentFilter) Result {
	return c.Get(ctx, "api/webcontents/fetchContent", filter.params())
}

// FetchEvents retrieves event entries matching the filter.
func (c *Client) FetchEvents(ctx context.Context, filter EventFilter) Result {
	return c.Get(ctx, "api/webcontents/fetchEvents", filter.params())
}

// FetchMediaGallery retrieves media gallery entries matching the filter.
func (c *Client) FetchMediaGallery(ctx context.Context, filter MediaGalleryFilter) Result {
	return c.Get(ctx, "api/webcontents/fetchMediaGallery", filter.params())
}

// FetchSystemData retrieves the site's system data. The endpoint takes
// no parameters.
func (c *Client) FetchSystemData(ctx context.Context) Result {
	return c.Get(ctx, "api/webcontents/fetchSystemData", nil)
}

// FetchWebsiteMenu retrieves the website menu tree matching the filter.
func (c *Client) FetchWebsiteMenu(ctx context.Context, filter MenuFilter) Result {
	return c.Get(ctx, "api/webcontents/fetchWebsiteMenu", filter.params())
}

// TestConnection verifies the API is reachable and the key is accepted
// by requesting system data.
func (c *Client) TestConnection(ctx context.Context) error {
	if res := c.FetchSystemData(ctx); !res.OK() {
		return fmt.Errorf("webcms connection test failed: %s", res.Message())
	}
	return nil
}

// Get issues a GET against path with params serialized as a query
// string. The five fetch operations all route through here; it also
// serves callers that need an endpoint this package has no typed
// method for.
func (c *Client) Get(ctx context.Context, path string, params *Params) Result {
	return c.Do(ctx, http.MethodGet, path, params)
}

// Do is the shared request executor. GET requests carry params in the
// query string, any other method carries them as a JSON body. Failures
// never surface as Go errors: transport and HTTP-level errors are
// folded into the Result envelope, and a body that does not decode on
// a success response yields a nil Result with no further signal.
func (c *Client) Do(ctx context.Context, method, path string, params *Params) Result {
	c.mu.Lock()
	requestURL := c.baseURL + strings.TrimPrefix(path, "/")
	header := c.header.Clone()
	c.mu.Unlock()

	var body io.Reader
	if params.Len() > 0 {
		if method == http.MethodGet {
			requestURL += "?" + params.Encode()
		} else {
			b, err := json.Marshal(params)
			if err != nil {
				return connectionFailure(err)
			}
			body = bytes.NewReader(b)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return connectionFailure(err)
	}
	req.Header = header

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making WebCMS API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return connectionFailure(err)
	}
	defer resp.Body.Close()

	var decoded Result
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		// Malformed or empty body: treated as absent, never as an error.
		decoded = nil
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("url", requestURL).
			Msg("WebCMS API request failed")
		return requestFailure(resp.StatusCode, decoded)
	}

	return decoded
}
