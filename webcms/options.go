package webcms

import (
	"net/http"
	"time"
)

// Option configures a Client at construction time.
type Option func(*clientOptions)

type clientOptions struct {
	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
}

func defaultOptions() clientOptions {
	return clientOptions{timeout: DefaultTimeout}
}

// WithTimeout overrides the default 30 second round-trip timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient supplies a custom HTTP client. The timeout option is
// ignored when this is set; the supplied client's own timeout applies.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
