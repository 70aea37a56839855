package rangeapi

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultUserAgent is sent when no User-Agent is configured. The public
// range API rejects requests without one.
const DefaultUserAgent = "pwncheck/1.0"

// Getter performs a GET and returns the status code and full body.
// A non-nil error means no response was received.
type Getter interface {
	Get(ctx context.Context, url string) (status int, body []byte, err error)
}

// HTTPGetter implements Getter on top of an *http.Client.
type HTTPGetter struct {
	// Client issues the requests. http.DefaultClient is used when nil.
	Client *http.Client
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// Padding asks the API to pad responses with zero-count entries so the
	// response size does not reveal the prefix bucket.
	Padding bool
}

// Get implements Getter.
func (g *HTTPGetter) Get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}

	ua := g.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	if g.Padding {
		req.Header.Set("Add-Padding", "true")
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// NewHTTPClient builds the client used for range queries. timeout bounds
// each request; caFile, when non-empty, replaces the system roots so a
// self-hosted range mirror with a private CA can be queried.
func NewHTTPClient(timeout time.Duration, caFile string) (*http.Client, error) {
	if caFile == "" {
		return &http.Client{Timeout: timeout}, nil
	}

	caCert, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA cert: %w", err)
	}
	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, errors.New("failed to parse CA cert")
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			RootCAs:    caPool,
			MinVersion: tls.VersionTLS12,
		},
	}
	return &http.Client{Transport: transport, Timeout: timeout}, nil
}
