package material

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/ifcbridge/internal/ctxlog"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
)

// Handle identifies a material object inside the host document.
type Handle string

// Creator creates the host-side counterpart of one leaf material.
type Creator interface {
	CreateMaterial(ctx context.Context, m *ifc.Material) (Handle, error)
}

// CreationError is returned when the host fails to create a material.
type CreationError struct {
	Material *ifc.Material
	Err      error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("material: create %s %q: %v", e.Material.ID, e.Material.Name, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// Cache records which leaves already have a host object. One Cache belongs to
// one import run; all methods are safe for concurrent use.
type Cache struct {
	mu             sync.Mutex
	created        map[*ifc.Material]Handle
	failed         map[*ifc.Material]error
	recordFailures bool
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// RecordFailures marks a leaf as done even when its creation failed, so it is
// never attempted again during the run. By default failed leaves stay
// uncached and the next composite that reaches them retries.
func RecordFailures(record bool) CacheOption {
	return func(c *Cache) {
		c.recordFailures = record
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		created: make(map[*ifc.Material]Handle),
		failed:  make(map[*ifc.Material]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the host handle created for m, if any.
func (c *Cache) Lookup(m *ifc.Material) (Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.created[m]
	return h, ok
}

// Len returns the number of leaves created successfully.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.created)
}

// Failed returns the leaves whose failure was recorded.
func (c *Cache) Failed() map[*ifc.Material]error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[*ifc.Material]error, len(c.failed))
	for m, err := range c.failed {
		out[m] = err
	}
	return out
}

// ensure creates m through creator unless the cache already settled it. The
// lock is held across the host call: membership check, creation and insert
// must not interleave with another goroutine handling the same leaf.
func (c *Cache) ensure(ctx context.Context, m *ifc.Material, creator Creator) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, done := c.created[m]; done {
		return nil
	}
	if _, done := c.failed[m]; done {
		return nil
	}

	logger := ctxlog.FromContext(ctx)
	h, err := creator.CreateMaterial(ctx, m)
	if err != nil {
		if c.recordFailures {
			c.failed[m] = err
		}
		logger.Debug("Host material creation failed.", "material", m.ID.String(), "error", err)
		return &CreationError{Material: m, Err: err}
	}

	c.created[m] = h
	logger.Debug("Host material created.", "material", m.ID.String(), "name", m.Name, "handle", string(h))
	return nil
}
