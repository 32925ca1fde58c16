// Package handoff carries a zone group from the overview to the dynamic
// fullscreen view. The payload lives in a short-lived cache and the
// navigation target only carries its correlation id.
package handoff

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maypok86/otter/v2"
	"github.com/philtim/zoneclock/zones"
)

// DefaultTTL is how long a payload waits to be picked up
const DefaultTTL = 30 * time.Second

// Payload is a zone group: the zone shown and the countries sharing it
type Payload struct {
	ZoneID    string        `json:"timezone"`
	Countries []zones.Entry `json:"countries"`
}

// Cache holds serialized payloads keyed by correlation id
type Cache struct {
	cache *otter.Cache[string, []byte]
}

// New creates a cache whose entries expire ttl after being written
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		cache: otter.Must(&otter.Options[string, []byte]{
			MaximumSize:      1_000,
			ExpiryCalculator: otter.ExpiryWriting[string, []byte](ttl),
		}),
	}
}

// Put stores p and returns the id to put in the navigation target
func (c *Cache) Put(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	id := uuid.NewString()
	c.PutRaw(id, data)
	return id, nil
}

// PutRaw stores already serialized bytes under id
func (c *Cache) PutRaw(id string, data []byte) {
	c.cache.Set(id, data)
}

// Take returns the payload stored under id and removes it. Missing,
// expired and unparsable entries all report false.
func (c *Cache) Take(id string) (Payload, bool) {
	if id == "" {
		return Payload{}, false
	}
	data, ok := c.cache.GetIfPresent(id)
	if !ok {
		return Payload{}, false
	}
	c.cache.Invalidate(id)

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, false
	}
	if p.ZoneID == "" || len(p.Countries) == 0 {
		return Payload{}, false
	}
	return p, true
}
