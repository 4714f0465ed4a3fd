package cache

import (
	"context"
	"sync"
	"time"
)

// memoryPending is an in-process PendingAssessments for tests and
// single-node development runs without redis.
type memoryPending struct {
	mu      sync.Mutex
	expires map[uint]time.Time
}

func NewMemoryPending() PendingAssessments {
	return &memoryPending{expires: make(map[uint]time.Time)}
}

func (p *memoryPending) Open(_ context.Context, assessmentID uint, ttl time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expires[assessmentID] = time.Now().Add(ttl)
	return nil
}

func (p *memoryPending) Claim(_ context.Context, assessmentID uint) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	deadline, ok := p.expires[assessmentID]
	if !ok {
		return false, nil
	}
	delete(p.expires, assessmentID)
	if time.Now().After(deadline) {
		return false, nil
	}
	return true, nil
}
