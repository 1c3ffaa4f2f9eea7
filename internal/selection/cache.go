package selection

import (
	"sync"

	"github.com/jonesrussell/gocompare/internal/content"
)

// DeviceCache is a session-scoped store of fetched devices keyed by slug.
// A second request for a cached slug resolves without a network round trip.
// Safe for concurrent use by both slots.
type DeviceCache struct {
	mu      sync.RWMutex
	devices map[string]*content.Device
}

// NewDeviceCache creates an empty device cache.
func NewDeviceCache() *DeviceCache {
	return &DeviceCache{devices: make(map[string]*content.Device)}
}

// Get returns the cached device for the slug, if present.
func (c *DeviceCache) Get(slug string) (*content.Device, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dev, ok := c.devices[slug]
	return dev, ok
}

// Put stores a fetched device. Devices are immutable once fetched, so a
// repeat Put for the same slug is a no-op overwrite.
func (c *DeviceCache) Put(dev *content.Device) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.devices[dev.Slug] = dev
}

// Len returns the number of cached devices.
func (c *DeviceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.devices)
}
