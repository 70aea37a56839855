// Package models defines the core data structures passed between the
// lookup client, the checker and its collaborators.
package models

// Candidate is one line of a range response: a digest suffix sharing the
// queried prefix and the number of times it appears in the breach corpus.
type Candidate struct {
	// Suffix is the 35-character uppercase hex remainder of a SHA-1 digest.
	Suffix string `json:"suffix"`
	// Count is how many times the digest was seen in breaches.
	Count int64 `json:"count"`
}

// LeakResult is the outcome of checking a single password.
// A zero Count means the password was not found.
type LeakResult struct {
	Password string `json:"-"`
	Count    int64  `json:"count"`
}

// Pwned reports whether the password appeared in the breach corpus.
func (r LeakResult) Pwned() bool {
	return r.Count > 0
}

// CheckRecord is an audit entry written after a check in service mode.
// It never carries the password or any part of its digest.
type CheckRecord struct {
	// ID is the unique identifier for the record.
	ID string
	// Pwned is true when the checked password was found.
	Pwned bool
	// Count is the breach count reported for the password.
	Count int64
	// CheckedAt is the unix timestamp of the check.
	CheckedAt int64
}

// Stats summarizes the audit log.
type Stats struct {
	Total int64 `json:"total"`
	Pwned int64 `json:"pwned"`
}
