package main

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
)

// Scheduler calls fire once per interval. It does not wait for the work
// triggered by a previous tick, so cycles may overlap.
type Scheduler struct {
	clock clock.Clock
	fire  func(time.Time)

	mu       sync.Mutex
	interval time.Duration
	reset    chan resetRequest
	cancel   context.CancelFunc
	done     chan struct{}
}

type resetRequest struct {
	interval time.Duration
	applied  chan struct{}
}

func NewScheduler(clk clock.Clock, interval time.Duration, fire func(time.Time)) *Scheduler {
	return &Scheduler{
		clock:    clk,
		fire:     fire,
		interval: interval,
	}
}

// Start is a no-op if the scheduler is already running.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}
	// a request queued for the previous run is stale; s.interval already
	// holds the latest cadence
	s.dropPendingReset()
	s.reset = make(chan resetRequest, 1)

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx, s.interval, s.reset, s.done)
}

// Stop returns once the ticker goroutine has exited; fire is not called
// after that.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Reset changes the cadence for the following ticks. The returned channel is
// closed once the running loop ticks at the new interval, or right away when
// the scheduler is stopped.
func (s *Scheduler) Reset(interval time.Duration) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := make(chan struct{})
	if s.cancel == nil {
		s.interval = interval
		s.dropPendingReset()
		close(applied)
		return applied
	}
	if interval == s.interval {
		close(applied)
		return applied
	}

	s.interval = interval
	s.dropPendingReset()
	s.reset <- resetRequest{interval: interval, applied: applied}
	return applied
}

// dropPendingReset must be called with s.mu held.
func (s *Scheduler) dropPendingReset() {
	select {
	case req := <-s.reset:
		close(req.applied)
	default:
	}
}

func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Scheduler) run(ctx context.Context, interval time.Duration, reset <-chan resetRequest, done chan struct{}) {
	defer close(done)

	ticker := s.clock.NewTicker(interval)
	defer func() { ticker.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-reset:
			ticker.Stop()
			ticker = s.clock.NewTicker(req.interval)
			close(req.applied)
		case t := <-ticker.C():
			if ctx.Err() != nil {
				return
			}
			s.fire(t)
		}
	}
}
