package scene

import (
	"container/list"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/pga"
)

// DefaultOutlineCapacity is the OutlineCache size used when none is given.
const DefaultOutlineCapacity = 64

// OutlineCache keeps the local-space outlines of recently drawn shapes so
// a renderer does not rebuild circle polygons every frame. Least recently
// used entries are evicted once the cache is full.
//
// OutlineCache is safe for concurrent use.
type OutlineCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[outlineKey]*list.Element
	lru      *list.List // front is most recent

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type outlineKey struct {
	shape    Shape
	segments int
}

type outlineEntry struct {
	key outlineKey
	pts []pga.Point
}

// OutlineStats is a snapshot of OutlineCache counters.
type OutlineStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewOutlineCache returns a cache holding up to capacity outlines.
// If capacity <= 0, DefaultOutlineCapacity is used.
func NewOutlineCache(capacity int) *OutlineCache {
	if capacity <= 0 {
		capacity = DefaultOutlineCapacity
	}
	return &OutlineCache{
		capacity: capacity,
		entries:  make(map[outlineKey]*list.Element),
		lru:      list.New(),
	}
}

// Outline returns s.Outline(segments), computing it only on a miss.
// The returned slice is shared and must not be modified. Shapes with a
// NaN dimension are never cached: they cannot be found again.
func (c *OutlineCache) Outline(s Shape, segments int) []pga.Point {
	if hasNaN(s) {
		c.misses.Add(1)
		return s.Outline(segments)
	}
	key := outlineKey{shape: s, segments: segments}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*outlineEntry).pts
	}
	c.misses.Add(1)

	pts := s.Outline(segments)
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*outlineEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&outlineEntry{key: key, pts: pts})
	return pts
}

// Len returns the number of cached outlines.
func (c *OutlineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns current counters.
func (c *OutlineCache) Stats() OutlineStats {
	return OutlineStats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func hasNaN(s Shape) bool {
	isNaN := func(v float32) bool { return math.IsNaN(float64(v)) }
	switch s := s.(type) {
	case Quad:
		return isNaN(s.Width) || isNaN(s.Height)
	case Circle:
		return isNaN(s.Radius)
	}
	return false
}
