package workspace

import (
	"crypto/sha256"
	"sync"

	"github.com/dhamidi/cdl/cdl"
)

// DefaultCacheCapacity bounds how many documents keep cached
// diagnostics at once.
const DefaultCacheCapacity = 64

type cacheEntry struct {
	fingerprint [sha256.Size]byte
	diags       []cdl.DocDiagnostic
}

// DiagCache remembers the last computed diagnostics per document,
// keyed by a content hash. When the hash matches, analysis is
// skipped. Eviction removes the oldest-inserted document first;
// recency does not matter because documents get edited, not re-read.
type DiagCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*cacheEntry
	// order tracks document insertion order for eviction.
	order   []string
	analyze func(text string) []cdl.DocDiagnostic
}

// NewDiagCache returns a cache bounded to capacity documents. A
// non-positive capacity gets the default.
func NewDiagCache(capacity int) *DiagCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &DiagCache{
		capacity: capacity,
		entries:  make(map[string]*cacheEntry),
		analyze:  analyzeDiagnostics,
	}
}

func analyzeDiagnostics(text string) []cdl.DocDiagnostic {
	return cdl.Analyze(text).Diags
}

// GetOrCompute returns diagnostics for the document, reusing the
// cached result when the text has not changed since last time.
func (c *DiagCache) GetOrCompute(id, text string) []cdl.DocDiagnostic {
	fingerprint := sha256.Sum256([]byte(text))

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[id]; ok {
		if entry.fingerprint == fingerprint {
			return entry.diags
		}
		// Stale entry: replace in place, keeping insertion order.
		entry.fingerprint = fingerprint
		entry.diags = c.analyze(text)
		return entry.diags
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	entry := &cacheEntry{fingerprint: fingerprint, diags: c.analyze(text)}
	c.entries[id] = entry
	c.order = append(c.order, id)
	return entry.diags
}

// Forget drops the cached entry for a closed document.
func (c *DiagCache) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[id]; !ok {
		return
	}
	delete(c.entries, id)
	for i, other := range c.order {
		if other == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Len reports how many documents currently have cached diagnostics.
func (c *DiagCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
