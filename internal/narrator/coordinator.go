package narrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwebster45206/mystery-room/pkg/narrative"
)

// GenerateRequest pairs a narrative request with the session's
// discovered-clue count, which scopes the memoization fingerprint.
type GenerateRequest struct {
	Request         *narrative.Request
	DiscoveredCount int
}

// Coordinator memoizes scene narrative generation and de-duplicates
// concurrent requests. Results are keyed by a fingerprint of scene id
// and discovered-clue count, so the narrative regenerates when the
// player's knowledge of the scene changes.
type Coordinator struct {
	gateway *Gateway

	mu       sync.Mutex
	cache    map[string]*Result
	inflight map[string]*flight
}

// flight tracks one in-progress generation. Waiters block on done and
// then read result.
type flight struct {
	done   chan struct{}
	result *Result
}

func NewCoordinator(gateway *Gateway) *Coordinator {
	return &Coordinator{
		gateway:  gateway,
		cache:    make(map[string]*Result),
		inflight: make(map[string]*flight),
	}
}

// Fingerprint identifies a scene narrative variant. Two requests with
// the same fingerprint are interchangeable.
func Fingerprint(sceneID string, discoveredCount int) string {
	return fmt.Sprintf("%s:%d", sceneID, discoveredCount)
}

// Generate returns the narrative for the request, serving memoized
// results when available. Concurrent callers with the same fingerprint
// share a single model call. Forced requests bypass the cache and the
// in-flight map, always issuing a fresh call.
//
// Fallback results resolve all waiters but are not memoized, so a later
// request may try the model again.
func (c *Coordinator) Generate(ctx context.Context, req GenerateRequest) *Result {
	fp := Fingerprint(req.Request.SceneID, req.DiscoveredCount)

	if req.Request.Force {
		res := c.gateway.Generate(ctx, req.Request)
		if !res.Fallback {
			c.mu.Lock()
			c.cache[fp] = res
			c.mu.Unlock()
		}
		return res
	}

	c.mu.Lock()
	if res, ok := c.cache[fp]; ok {
		c.mu.Unlock()
		return res
	}
	if f, ok := c.inflight[fp]; ok {
		c.mu.Unlock()
		<-f.done
		return f.result
	}

	f := &flight{done: make(chan struct{})}
	c.inflight[fp] = f
	c.mu.Unlock()

	res := c.gateway.Generate(ctx, req.Request)

	c.mu.Lock()
	if !res.Fallback {
		c.cache[fp] = res
	}
	delete(c.inflight, fp)
	c.mu.Unlock()

	f.result = res
	close(f.done)

	return res
}
