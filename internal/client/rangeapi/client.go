// Package rangeapi queries a k-anonymity password range endpoint: it sends a
// five character SHA-1 prefix and returns every (suffix, count) pair sharing
// that prefix.
package rangeapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/atinyakov/pwncheck/internal/hashprefix"
	"github.com/atinyakov/pwncheck/internal/metrics"
	"github.com/atinyakov/pwncheck/internal/models"
)

const (
	// DefaultBaseURL is the public Pwned Passwords API.
	DefaultBaseURL = "https://api.pwnedpasswords.com"

	defaultBackoff = 500 * time.Millisecond
)

// Options configures a Client.
type Options struct {
	// BaseURL is the endpoint root; "/range/{prefix}" is appended.
	BaseURL string
	// Retries is how many extra attempts are made after a transport failure
	// or a 5xx status. Zero means exactly one request per lookup.
	Retries uint64
	// Backoff is the constant pause between attempts.
	Backoff time.Duration
}

// Client performs range lookups through a Getter.
type Client struct {
	getter  Getter
	baseURL string
	retries uint64
	backoff time.Duration
	log     *zap.Logger
}

// New creates a Client. A nil logger disables logging.
func New(getter Getter, opts Options, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &Client{
		getter:  getter,
		baseURL: base,
		retries: opts.Retries,
		backoff: backoff,
		log:     log.Named("rangeapi"),
	}
}

// Lookup fetches the candidates for prefix. The prefix is passed through as
// a path segment without validation.
func (c *Client) Lookup(ctx context.Context, prefix hashprefix.Prefix) ([]models.Candidate, error) {
	start := time.Now()
	defer func() { metrics.LookupDuration.Observe(time.Since(start).Seconds()) }()

	url := c.baseURL + "/range/" + string(prefix)

	var body []byte
	b := retry.WithMaxRetries(c.retries, retry.NewConstant(c.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		status, data, err := c.getter.Get(ctx, url)
		if err != nil {
			c.log.Warn("range request failed", zap.String("prefix", string(prefix)), zap.Error(err))
			return retry.RetryableError(&RemoteQueryError{URL: url, Err: err})
		}
		if status != http.StatusOK {
			c.log.Warn("range endpoint returned non-OK status",
				zap.String("prefix", string(prefix)),
				zap.Int("status_code", status),
			)
			qerr := &RemoteQueryError{Status: status, URL: url}
			if status >= http.StatusInternalServerError {
				return retry.RetryableError(qerr)
			}
			return qerr
		}
		body = data
		return nil
	})
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeRemoteError).Inc()
		var qerr *RemoteQueryError
		if errors.As(err, &qerr) {
			return nil, qerr
		}
		return nil, &RemoteQueryError{URL: url, Err: err}
	}

	candidates, err := ParseRange(body)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeParseError).Inc()
		c.log.Error("failed to parse range response", zap.String("prefix", string(prefix)), zap.Error(err))
		return nil, err
	}

	metrics.LookupsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	c.log.Debug("range lookup done", zap.String("prefix", string(prefix)), zap.Int("candidates", len(candidates)))
	return candidates, nil
}
