// Package cache provides the key-value cache used for low-churn reads
// (standings, league metadata, by-date fixture lists). A Redis backend is
// used when REDIS_URL is configured; otherwise an in-memory TTL store
// backs the same interface for development.
package cache

import (
	"context"
	"sync"
	"time"
)

// Store is the cache contract. Values are opaque serialized bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// Cache keys.
const (
	KeyStandingsFmt    = "standings:%d:%d"   // leagueID, season
	KeyFixturesDateFmt = "fixtures:%d:%d:%s" // leagueID, season, YYYY-MM-DD
)

// --------------------------------------------------------------------------
// In-memory backend
// --------------------------------------------------------------------------

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is a thread-safe in-memory TTL cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	stop    chan struct{}
}

var _ Store = (*Memory)(nil)

// NewMemory creates an in-memory cache with a background eviction loop.
func NewMemory() *Memory {
	c := &Memory{
		entries: make(map[string]entry),
		stop:    make(chan struct{}),
	}
	go c.evictLoop()
	return c
}

// Get implements Store.
func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set implements Store.
func (c *Memory) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, expiresAt: time.Now().Add(ttl)}
	return nil
}

// HealthCheck implements Store. The in-memory cache is always healthy.
func (c *Memory) HealthCheck(context.Context) error { return nil }

// Close stops the eviction loop.
func (c *Memory) Close() error {
	close(c.stop)
	return nil
}

// Stats returns key counts, for the debug surface.
func (c *Memory) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := time.Now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			active++
		}
	}
	return map[string]interface{}{
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// evictLoop periodically removes expired entries.
func (c *Memory) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evict()
		}
	}
}

func (c *Memory) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
