package controllers

import (
	"sync"

	"abstract-review-web/models"
)

// abstractCache keeps the last-fetched abstract list per admin session so
// filter and sort changes stay local. It is consulted only for filter and
// sort navigation; a plain dashboard entry re-fetches and overwrites the
// entry. Every mutation with server-side side effects (accept, reject,
// randomize) invalidates the entry, forcing a full re-fetch; the metadata
// edit is the one exception and patches the entry in place with the
// canonical record the backend returned.
type abstractCache struct {
	mu      sync.Mutex
	entries map[string][]models.Abstract
}

var dashboards = &abstractCache{entries: make(map[string][]models.Abstract)}

func (c *abstractCache) get(sessionID string) ([]models.Abstract, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.entries[sessionID]
	if !ok {
		return nil, false
	}
	out := make([]models.Abstract, len(list))
	copy(out, list)
	return out, true
}

func (c *abstractCache) set(sessionID string, list []models.Abstract) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make([]models.Abstract, len(list))
	copy(stored, list)
	c.entries[sessionID] = stored
}

func (c *abstractCache) invalidate(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, sessionID)
}

// patch replaces the cached entry matching canonical.ID. A cache miss is
// fine; the next dashboard load re-fetches anyway.
func (c *abstractCache) patch(sessionID string, canonical models.Abstract) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.entries[sessionID]
	if !ok {
		return
	}
	models.ApplyCanonical(list, canonical)
}
