package container

import "sync"

// Collection is the append-only list of registrations a Provider is built from.
type Collection struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends an entry.
func (c *Collection) Add(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, e)
}

// AddInstance is a shorthand for a singleton instance binding.
func (c *Collection) AddInstance(id ID, v any) {
	c.Add(Entry{Capability: id, Lifetime: Singleton, Kind: InstanceBinding, Instance: v})
}

// Entries returns a snapshot of all entries in registration order.
func (c *Collection) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains reports whether at least one entry exists for id.
func (c *Collection) Contains(id ID) bool {
	return c.Count(id) > 0
}

// Count returns the number of entries registered for id.
func (c *Collection) Count(id ID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, e := range c.entries {
		if e.Capability == id {
			n++
		}
	}
	return n
}

// Len returns the total number of entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
