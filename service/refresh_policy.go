package service

import (
	"sync"
	"time"

	"dayzlookup/helpers"
	"dayzlookup/interfaces"
)

// DefaultRefreshInterval is how long a directory snapshot is served before the next lookup refetches it.
const DefaultRefreshInterval = 10 * time.Second

// RefreshPolicy decides whether a lookup has to refetch the server directory before it is answered.
// A refresh is due when none was attempted yet or the last attempt is at least interval old.
// Failed attempts count as attempts, so a broken upstream is retried at most once per interval.
type RefreshPolicy struct {
	clock    interfaces.TimeProvider
	interval time.Duration

	mu          sync.Mutex
	lastAttempt time.Time
}

// NewRefreshPolicy creates a policy with the given interval. Panics on nil clock or non-positive interval.
func NewRefreshPolicy(clock interfaces.TimeProvider, interval time.Duration) *RefreshPolicy {
	if interval <= 0 {
		panic("service.refresh_policy.go: interval must be positive")
	}
	return &RefreshPolicy{
		clock:    helpers.NilPanic(clock, "service.refresh_policy.go: clock is required"),
		interval: interval,
	}
}

// Due reports whether a refresh has to run now.
func (p *RefreshPolicy) Due() bool {
	now := p.clock.Now()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastAttempt.IsZero() || now.Sub(p.lastAttempt) >= p.interval
}

// MarkAttempt records a refresh attempt at the current time, whatever its outcome.
func (p *RefreshPolicy) MarkAttempt() {
	now := p.clock.Now()
	p.mu.Lock()
	p.lastAttempt = now
	p.mu.Unlock()
}

// LastAttempt returns the time of the last refresh attempt, zero if there was none.
func (p *RefreshPolicy) LastAttempt() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastAttempt
}

// Interval returns the refresh interval.
func (p *RefreshPolicy) Interval() time.Duration {
	return p.interval
}
