package camera

import (
	"sync"
	"time"

	"easyip-setup/internal/easyip"
)

// Camera represents the latest known state of a single EasyIP camera
type Camera struct {
	MacAddress    easyip.MacAddress
	Config        easyip.CameraConfiguration
	Source        string
	FirstSeen     time.Time
	LastSeen      time.Time
	ReplyCount    uint64
	ConfigChanges uint64
	mu            sync.RWMutex
}

// NewCamera creates a new camera entry with the given hardware address
func NewCamera(mac easyip.MacAddress) *Camera {
	return &Camera{
		MacAddress: mac,
	}
}

// Update records a decoded reply from the camera
func (c *Camera) Update(config easyip.CameraConfiguration, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()

	if c.ReplyCount > 0 && config != c.Config {
		c.ConfigChanges++
	}
	if c.FirstSeen.IsZero() {
		c.FirstSeen = now
	}

	c.Config = config
	c.Source = source
	c.LastSeen = now
	c.ReplyCount++
}

// GetConfig returns a copy of the last decoded configuration
func (c *Camera) GetConfig() easyip.CameraConfiguration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Config
}

// IsStale returns true if the camera hasn't replied for the given duration
func (c *Camera) IsStale(timeout time.Duration) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.LastSeen.IsZero() {
		return true
	}
	return time.Since(c.LastSeen) > timeout
}

// GetInfo returns a snapshot of the camera state
func (c *Camera) GetInfo() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Info{
		MacAddress:    c.MacAddress,
		Config:        c.Config,
		Source:        c.Source,
		FirstSeen:     c.FirstSeen,
		LastSeen:      c.LastSeen,
		ReplyCount:    c.ReplyCount,
		ConfigChanges: c.ConfigChanges,
	}
}

// Info is a snapshot of camera state (no mutex needed)
type Info struct {
	MacAddress    easyip.MacAddress
	Config        easyip.CameraConfiguration
	Source        string
	FirstSeen     time.Time
	LastSeen      time.Time
	ReplyCount    uint64
	ConfigChanges uint64
}
