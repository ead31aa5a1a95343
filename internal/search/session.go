package search

import (
	"context"
	"sync"

	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/sirupsen/logrus"
)

// Executor runs a compiled request against the data store. The production
// implementation is the search service over Postgres; tests stub it.
type Executor interface {
	Search(ctx context.Context, req Request) (*models.SearchResult, error)
}

// Session owns the visible outcome of the discovery flow. Every Execute is
// stamped with a monotonically increasing sequence number; only the most
// recently issued request may update the visible result, no matter in which
// order responses arrive. Failures of superseded requests are dropped without
// surfacing.
type Session struct {
	executor Executor
	logger   *logrus.Logger

	mu         sync.Mutex
	lastIssued uint64
	result     *models.SearchResult
	err        error
	pending    bool
}

// NewSession creates the session and fires one automatic execute with an
// all-empty filter state, so discovery without criteria shows the full
// catalog instead of an error.
func NewSession(executor Executor, logger *logrus.Logger) *Session {
	s := &Session{executor: executor, logger: logger}
	s.Execute(context.Background(), Compile(&FilterState{}))
	return s
}

// Execute issues an asynchronous search. The returned channel closes once
// this request's completion has been processed, whether it was applied or
// discarded as stale.
func (s *Session) Execute(ctx context.Context, req Request) <-chan struct{} {
	s.mu.Lock()
	s.lastIssued++
	seq := s.lastIssued
	s.pending = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := s.executor.Search(ctx, req)
		s.complete(seq, result, err)
	}()
	return done
}

func (s *Session) complete(seq uint64, result *models.SearchResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lastIssued {
		// A newer request was issued while this one was in flight. Its
		// outcome, error or not, no longer matters to anyone.
		s.logger.WithFields(logrus.Fields{
			"seq":    seq,
			"latest": s.lastIssued,
		}).Debug("Discarding superseded search completion")
		return
	}

	s.result = result
	s.err = err
	s.pending = false
}

// Snapshot returns the authoritative result, the error of the latest request
// if it failed, and whether the latest request is still in flight.
func (s *Session) Snapshot() (*models.SearchResult, error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err, s.pending
}
