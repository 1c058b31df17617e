package dictionary

import (
	"sync"

	"github.com/fwojciec/reactdict"
)

// Cache holds generated definitions in memory, keyed by term ID.
// It is safe for concurrent use.
type Cache struct {
	mu   sync.RWMutex
	defs map[string]*reactdict.Definition
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{defs: make(map[string]*reactdict.Definition)}
}

// Get returns the cached definition for term, matching case-insensitively.
func (c *Cache) Get(term string) (*reactdict.Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.defs[reactdict.TermID(term)]
	return def, ok
}

// Put stores def under the ID of its term.
func (c *Cache) Put(def *reactdict.Definition) {
	id := reactdict.TermID(def.Term)
	if id == "" {
		return
	}
	c.mu.Lock()
	c.defs[id] = def
	c.mu.Unlock()
}

// Delete evicts the definition for term.
func (c *Cache) Delete(term string) {
	c.mu.Lock()
	delete(c.defs, reactdict.TermID(term))
	c.mu.Unlock()
}

// Len returns the number of cached definitions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.defs)
}
