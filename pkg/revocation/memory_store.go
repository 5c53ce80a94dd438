package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]time.Time // jti -> expiry
	now     func() time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired records are swept.
// Set to 0 to disable the sweeper; expired records are still ignored on read.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithMemoryClock replaces time.Now. Used in tests.
func WithMemoryClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates an in-memory store. Call Close to stop the sweeper.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		records:         make(map[string]time.Time),
		now:             time.Now,
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

func (ms *MemoryStore) MarkRevoked(ctx context.Context, jti string, ttl time.Duration) error {
	if err := validate(jti, ttl); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	if exp, ok := ms.records[jti]; ok && now.Before(exp) {
		return nil
	}
	ms.records[jti] = now.Add(ttl)
	return nil
}

func (ms *MemoryStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}

	ms.mu.RLock()
	exp, ok := ms.records[jti]
	ms.mu.RUnlock()

	return ok && ms.now().Before(exp), nil
}

// Len returns the number of records, expired ones not yet swept included.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.records)
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.RemoveExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

// RemoveExpired drops every record whose TTL has elapsed.
func (ms *MemoryStore) RemoveExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for jti, exp := range ms.records {
		if !now.Before(exp) {
			delete(ms.records, jti)
		}
	}
}

// Close stops the sweeper goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() error {
	ms.closeOnce.Do(func() { close(ms.stopCleanup) })
	return nil
}
