// Package service provides the password check business logic: resolving a
// target suffix against range candidates and orchestrating partition, lookup
// and resolve for each password.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/pwncheck/internal/hashprefix"
	"github.com/atinyakov/pwncheck/internal/metrics"
	"github.com/atinyakov/pwncheck/internal/models"
)

// ErrNoAuditLog is returned by Stats when no CheckRepository is configured.
var ErrNoAuditLog = errors.New("audit log is not configured")

// RangeLookup fetches the candidates sharing a digest prefix.
type RangeLookup interface {
	Lookup(ctx context.Context, prefix hashprefix.Prefix) ([]models.Candidate, error)
}

// CheckRepository persists audit records of completed checks.
type CheckRepository interface {
	// RecordCheck stores a single audit record.
	RecordCheck(ctx context.Context, rec models.CheckRecord) error
	// Stats returns totals over all stored records.
	Stats(ctx context.Context) (models.Stats, error)
}

// Resolve returns the count of the first candidate whose suffix equals
// target, or 0 when none does. The comparison is case-sensitive.
func Resolve(candidates []models.Candidate, target hashprefix.Suffix) int64 {
	for _, c := range candidates {
		if c.Suffix == string(target) {
			return c.Count
		}
	}
	return 0
}

// CheckService checks passwords against a range lookup.
type CheckService struct {
	lookup RangeLookup
	repo   CheckRepository
	log    *zap.Logger
	now    func() time.Time
}

// NewCheckService constructs a CheckService. repo may be nil, in which case
// no audit records are written. A nil logger disables logging.
func NewCheckService(lookup RangeLookup, repo CheckRepository, log *zap.Logger) *CheckService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckService{
		lookup: lookup,
		repo:   repo,
		log:    log.Named("checker"),
		now:    time.Now,
	}
}

// CheckPassword partitions password, looks up its prefix and resolves the
// suffix. No result is returned when the lookup fails.
func (s *CheckService) CheckPassword(ctx context.Context, password string) (models.LeakResult, error) {
	prefix, suffix := hashprefix.Partition(password)

	candidates, err := s.lookup.Lookup(ctx, prefix)
	if err != nil {
		return models.LeakResult{}, err
	}

	res := models.LeakResult{Password: password, Count: Resolve(candidates, suffix)}
	if res.Pwned() {
		metrics.ChecksTotal.WithLabelValues(metrics.ResultPwned).Inc()
	} else {
		metrics.ChecksTotal.WithLabelValues(metrics.ResultClean).Inc()
	}

	s.record(ctx, res)
	return res, nil
}

// CheckAll checks passwords in order and hands each result to emit. It stops
// at the first lookup or emit error; results emitted before that stand.
func (s *CheckService) CheckAll(ctx context.Context, passwords []string, emit func(models.LeakResult) error) error {
	for i, pw := range passwords {
		res, err := s.CheckPassword(ctx, pw)
		if err != nil {
			s.log.Error("password check failed", zap.Int("index", i), zap.Error(err))
			return err
		}
		if err := emit(res); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns audit log totals.
func (s *CheckService) Stats(ctx context.Context) (models.Stats, error) {
	if s.repo == nil {
		return models.Stats{}, ErrNoAuditLog
	}
	return s.repo.Stats(ctx)
}

// record writes an audit row. Failures are logged and never fail the check.
func (s *CheckService) record(ctx context.Context, res models.LeakResult) {
	if s.repo == nil {
		return
	}
	rec := models.CheckRecord{
		ID:        uuid.NewString(),
		Pwned:     res.Pwned(),
		Count:     res.Count,
		CheckedAt: s.now().Unix(),
	}
	if err := s.repo.RecordCheck(ctx, rec); err != nil {
		s.log.Warn("failed to record check", zap.String("id", rec.ID), zap.Error(err))
	}
}
