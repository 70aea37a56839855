// Package metrics declares the Prometheus collectors exported by pwncheck.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeRemoteError = "remote_error"
	OutcomeParseError  = "parse_error"
)

// Check results.
const (
	ResultPwned = "pwned"
	ResultClean = "clean"
)

var (
	// LookupsTotal counts range lookups by outcome.
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pwncheck_lookups_total",
		Help: "The total number of range lookups by outcome",
	}, []string{"outcome"})

	// LookupDuration observes the wall time of range lookups, retries included.
	LookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pwncheck_lookup_duration_seconds",
		Help:    "The range lookup duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// ChecksTotal counts completed password checks by result.
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pwncheck_checks_total",
		Help: "The total number of completed password checks by result",
	}, []string{"result"})
)
