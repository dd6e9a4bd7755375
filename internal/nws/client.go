// Package nws is a minimal client for the National Weather Service REST API.
package nws

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DefaultBaseURL is the public NWS API endpoint
	DefaultBaseURL = "https://api.weather.gov"
	// DefaultUserAgent identifies this application to the NWS API
	DefaultUserAgent = "weather-app/1.0"
	// DefaultAccept requests GeoJSON representations
	DefaultAccept = "application/geo+json"
	// DefaultTimeout bounds a whole request including reading the body
	DefaultTimeout = 30 * time.Second
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	UserAgent       string
	Accept          string
	Timeout         time.Duration
	FollowRedirects bool
	Logger          logrus.FieldLogger
}

// Client performs GET requests against the NWS API. It is safe for
// concurrent use and should be shared for the lifetime of the process.
type Client struct {
	httpClient *http.Client
	transport  *http.Transport
	userAgent  string
	accept     string
	log        logrus.FieldLogger
}

// NewClient creates a client with a pooled, traced transport.
func NewClient(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Accept == "" {
		opts.Accept = DefaultAccept
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		opts.Logger = logger
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(transport),
		Timeout:   opts.Timeout,
	}
	if !opts.FollowRedirects {
		// A redirect is surfaced as a non-2xx status.
		httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		httpClient: httpClient,
		transport:  transport,
		userAgent:  opts.UserAgent,
		accept:     opts.Accept,
		log:        opts.Logger,
	}
}

// Get fetches url and decodes the JSON body into v. Any failure is returned
// as a *FetchError.
func (c *Client) Get(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Kind: KindNetwork, URL: url, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", c.accept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Kind: classifyTransportError(err), URL: url, Err: errors.Wrap(err, "send request")}
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("nws response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &FetchError{Kind: KindStatus, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Kind: classifyTransportError(err), URL: url, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "read body")}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &FetchError{Kind: KindDecode, URL: url, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "decode body")}
	}
	return nil
}

// Close releases idle pooled connections.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}
