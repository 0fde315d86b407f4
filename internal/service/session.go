package service

import (
	"sync"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// ActorCache is the session-resilience snapshot of the authenticated
// operator. Resolving identity live can transiently fail (the analogue of a
// camera-permission prompt wiping in-memory auth state); the cache keeps the
// last known good actor so an authenticated admin is not bounced off the
// scanner. An empty cache is never treated as authenticated.
type ActorCache struct {
	mu    sync.RWMutex
	actor *domain.Actor
	admin bool
}

func NewActorCache() *ActorCache {
	return &ActorCache{}
}

// Set snapshots a live actor and their admin eligibility. A nil actor is
// ignored: losing the live value must not erase the snapshot.
func (c *ActorCache) Set(actor *domain.Actor) {
	if actor == nil {
		return
	}
	snapshot := *actor

	c.mu.Lock()
	c.actor = &snapshot
	c.admin = actor.IsAdmin()
	c.mu.Unlock()
}

// Snapshot returns the cached actor, if any.
func (c *ActorCache) Snapshot() (*domain.Actor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.actor == nil {
		return nil, false
	}
	return c.actor, true
}

// IsAdmin reports the cached eligibility; false on an empty cache.
func (c *ActorCache) IsAdmin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.actor != nil && c.admin
}

// Resolve applies the read policy: prefer the live actor (snapshotting it),
// fall back to the cache when the live value is absent, and report
// unauthenticated only when both are missing.
func (c *ActorCache) Resolve(live *domain.Actor) (*domain.Actor, error) {
	if live != nil {
		c.Set(live)
		return live, nil
	}
	if cached, ok := c.Snapshot(); ok {
		return cached, nil
	}
	return nil, domain.ErrUnauthenticated
}
