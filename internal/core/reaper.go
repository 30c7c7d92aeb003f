// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"sync"
	"time"

	"github.com/mentorlink/mentorlink/internal/logging"
)

// DefaultReaperInterval is used when no interval is configured.
const DefaultReaperInterval = time.Hour

// RelationReaper periodically completes ACCEPTED relations whose end date
// has passed.
type RelationReaper struct {
	svc      *MentorshipService
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRelationReaper returns a reaper that sweeps every interval.
func NewRelationReaper(svc *MentorshipService, interval time.Duration) *RelationReaper {
	if interval <= 0 {
		interval = DefaultReaperInterval
	}
	return &RelationReaper{svc: svc, interval: interval}
}

// RunOnce performs a single sweep using the service clock.
func (r *RelationReaper) RunOnce(ctx context.Context) (int, error) {
	n, err := r.svc.CompleteOverdueRelations(ctx, now(r.svc.opts.clock))
	if err != nil {
		logging.Errorf("relation reaper: %v", err)
		return n, err
	}
	if n > 0 {
		logging.Infof("relation reaper: completed %d overdue relation(s)", n)
	}
	return n, nil
}

// Start launches the background sweep. It runs once immediately, then on
// every tick until ctx is cancelled or Stop is called. Calling Start twice
// is a no-op.
func (r *RelationReaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		_, _ = r.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = r.RunOnce(ctx)
			}
		}
	}(r.done)
}

// Stop cancels the background sweep and waits for it to exit.
func (r *RelationReaper) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
