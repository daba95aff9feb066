package httpx

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent is stamped on outgoing requests that do not set one.
const DefaultUserAgent = "stocktracker/1.0"

// Client is a small wrapper around http.Client with sane defaults. It
// satisfies the Do-only client interfaces of the upstream packages.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New returns a client whose whole exchange, body included, is bounded by
// timeout.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}, UserAgent: DefaultUserAgent}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return c.HTTP.Do(req)
}
