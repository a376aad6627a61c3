// Package modcache implements the dependent side of the registry's
// cache-consistency protocol: a per-key cache of resolved module addresses
// with bounded staleness, refreshed either on TTL expiry or on an explicit
// call from the cache maintenance orchestrator.
package modcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultOrchestratorKey is the registry key under which the cache
// maintenance orchestrator's own identity is published. Dependents resolve
// it through the registry rather than configuring it locally, so rotating
// the orchestrator is a single registry mutation.
const DefaultOrchestratorKey = "cache-orchestrator"

// ErrNotOrchestrator rejects refresh calls from anyone but the
// orchestrator's resolved identity.
var ErrNotOrchestrator = errors.New("caller is not the cache maintenance orchestrator")

// Resolver looks a key up in the registry, failing on unknown keys. It is
// the dependent's resolve-or-fail path.
type Resolver func(ctx context.Context, key string) (common.Address, error)

type entry struct {
	addr     common.Address
	cachedAt time.Time
}

// Cache holds locally cached module addresses for one dependent component.
// Reads are stale-tolerant: an expired entry is re-resolved inline, and if
// re-resolution fails the previous value is served rather than failing the
// read. Staleness is therefore bounded by the TTL or by the orchestrator's
// next refresh sweep, whichever comes first.
type Cache struct {
	mu              sync.Mutex
	resolve         Resolver
	orchestratorKey string
	ttl             time.Duration
	now             func() time.Time
	entries         map[string]entry
}

// NewCache creates a cache over the given resolver with a per-entry TTL.
func NewCache(resolve Resolver, ttl time.Duration) *Cache {
	return &Cache{
		resolve:         resolve,
		orchestratorKey: DefaultOrchestratorKey,
		ttl:             ttl,
		now:             time.Now,
		entries:         make(map[string]entry),
	}
}

// Get returns the address bound to key, serving the cached value while it
// is fresh. An expired entry is re-resolved inline; if re-resolution fails
// the stale value is returned instead of an error. Only a key that was
// never successfully resolved fails.
func (c *Cache) Get(ctx context.Context, key string) (common.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if e, ok := c.entries[key]; ok && now.Sub(e.cachedAt) < c.ttl {
		return e.addr, nil
	}

	addr, err := c.resolve(ctx, key)
	if err != nil {
		if e, ok := c.entries[key]; ok {
			// Stale beats unavailable.
			return e.addr, nil
		}
		return common.Address{}, fmt.Errorf("resolving %q: %w", key, err)
	}

	c.entries[key] = entry{addr: addr, cachedAt: now}
	return addr, nil
}

// RefreshLocalCache forces re-resolution of every tracked key. Only the
// orchestrator's identity, itself resolved through the registry, may call
// it. Per-key failures do not stop the sweep; they are joined into the
// returned error so the orchestrator can record the attempt as failed.
func (c *Cache) RefreshLocalCache(ctx context.Context, caller common.Address) error {
	orchestrator, err := c.resolve(ctx, c.orchestratorKey)
	if err != nil {
		return fmt.Errorf("resolving orchestrator identity: %w", err)
	}
	if caller != orchestrator {
		return fmt.Errorf("%w: %s", ErrNotOrchestrator, caller.Hex())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var errs []error
	for key := range c.entries {
		addr, err := c.resolve(ctx, key)
		if err != nil {
			errs = append(errs, fmt.Errorf("refreshing %q: %w", key, err))
			continue
		}
		c.entries[key] = entry{addr: addr, cachedAt: now}
	}
	return errors.Join(errs...)
}

// Len reports how many keys the cache currently tracks.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
