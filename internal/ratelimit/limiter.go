// Package ratelimit implements fixed-window admission control keyed by
// (client, endpoint class). It is the only cross-request mutable state in
// the service, so all bucket updates happen under one lock.
package ratelimit

import (
	"sync"
	"time"
)

// Class partitions endpoints into separately budgeted groups.
type Class string

const (
	ClassRealtime    Class = "realtime-analysis"
	ClassSuggestions Class = "suggestions"
	ClassContext     Class = "context-fetch"
	ClassGeneral     Class = "general"
)

// Policy is one class's window budget. SuccessOnly classes count a request
// only if it ultimately succeeds: the admission increment is rolled back via
// Forgive when the handler reports failure, so genuine errors and the
// retries they provoke do not eat the budget.
type Policy struct {
	Window      time.Duration
	Max         int
	SuccessOnly bool
}

// DefaultPolicies matches the product's published limits.
var DefaultPolicies = map[Class]Policy{
	ClassRealtime:    {Window: time.Minute, Max: 30, SuccessOnly: true},
	ClassSuggestions: {Window: 5 * time.Minute, Max: 20},
	ClassContext:     {Window: time.Minute, Max: 10},
	ClassGeneral:     {Window: 15 * time.Minute, Max: 100},
}

// Decision is the typed outcome of an admission check. Denial is a normal
// value, never an error.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Remaining  int
}

type bucket struct {
	windowStart time.Time
	count       int
}

// Limiter tracks fixed-window counters per (client, class) key.
type Limiter struct {
	mu       sync.Mutex
	policies map[Class]Policy
	buckets  map[string]*bucket
	now      func() time.Time
}

// New creates a limiter with the default per-class policies.
func New() *Limiter {
	return NewWithPolicies(DefaultPolicies)
}

// NewWithPolicies creates a limiter with custom policies, mainly for tests.
func NewWithPolicies(policies map[Class]Policy) *Limiter {
	return &Limiter{
		policies: policies,
		buckets:  make(map[string]*bucket),
		now:      time.Now,
	}
}

func key(clientID string, class Class) string {
	return clientID + "|" + string(class)
}

// Admit counts one request against the client's window and decides whether
// it may proceed. When the window has elapsed the bucket resets first.
func (l *Limiter) Admit(clientID string, class Class) Decision {
	p, ok := l.policies[class]
	if !ok {
		p = l.policies[ClassGeneral]
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	k := key(clientID, class)
	b := l.buckets[k]
	if b == nil || now.Sub(b.windowStart) >= p.Window {
		b = &bucket{windowStart: now}
		l.buckets[k] = b
	}

	b.count++
	if b.count > p.Max {
		return Decision{
			Allowed:    false,
			RetryAfter: b.windowStart.Add(p.Window).Sub(now),
		}
	}
	return Decision{Allowed: true, Remaining: p.Max - b.count}
}

// Forgive rolls back one admission for a SuccessOnly class after the request
// failed. It only touches the current window; if the window rolled over since
// admission the failed request has already aged out.
func (l *Limiter) Forgive(clientID string, class Class) {
	p, ok := l.policies[class]
	if !ok || !p.SuccessOnly {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[key(clientID, class)]
	if b == nil || l.now().Sub(b.windowStart) >= p.Window {
		return
	}
	if b.count > 0 {
		b.count--
	}
}

// SuccessOnly reports whether the class rolls back failed requests.
func (l *Limiter) SuccessOnly(class Class) bool {
	return l.policies[class].SuccessOnly
}
