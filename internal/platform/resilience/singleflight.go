package resilience

import (
	"context"
	"fmt"
	"sync"
)

// Group coalesces concurrent calls that share a key into one execution.
type Group struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	done chan struct{}
	val  any
	err  error
	dups int
}

// Do runs fn once per key among concurrent callers. shared reports whether
// the result was produced for more than one caller.
func (g *Group) Do(key string, fn func() (any, error)) (v any, err error, shared bool) {
	return g.DoContext(context.Background(), key, fn)
}

// DoContext is Do with a way out: a caller whose ctx ends stops waiting and
// gets ctx.Err(), while the shared execution keeps running for the others.
func (g *Group) DoContext(ctx context.Context, key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		return g.wait(ctx, c)
	}

	c := &call{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	go g.run(key, c, fn)
	return g.wait(ctx, c)
}

// InFlight reports how many keys currently have an execution running.
func (g *Group) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *Group) run(key string, c *call, fn func() (any, error)) {
	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)
	}()
	defer func() {
		if r := recover(); r != nil {
			c.val, c.err = nil, fmt.Errorf("singleflight %q panicked: %v", key, r)
		}
	}()
	c.val, c.err = fn()
}

func (g *Group) wait(ctx context.Context, c *call) (any, error, bool) {
	select {
	case <-c.done:
		g.mu.Lock()
		shared := c.dups > 0
		g.mu.Unlock()
		return c.val, c.err, shared
	case <-ctx.Done():
		return nil, ctx.Err(), false
	}
}
