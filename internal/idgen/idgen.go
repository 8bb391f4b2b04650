// Package idgen hands out time-derived int64 ids.
package idgen

import (
	"sync"
	"time"
)

// Generator returns the current Unix time in milliseconds, bumped past the
// last id it issued or observed so that ids strictly increase within one
// process. Ids from different processes may collide under clock skew.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// New returns a Generator reading time from now (time.Now when nil).
func New(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes every later Next exceed id.
func (g *Generator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}
