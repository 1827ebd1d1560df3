package camera

import (
	"bytes"
	"sort"
	"sync"
	"time"

	"easyip-setup/internal/easyip"
)

// Registry holds every camera seen in decoded replies, keyed by hardware
// address. It lives in memory only.
type Registry struct {
	cameras map[easyip.MacAddress]*Camera
	mu      sync.RWMutex
}

// NewRegistry creates a new camera registry
func NewRegistry() *Registry {
	return &Registry{
		cameras: make(map[easyip.MacAddress]*Camera),
	}
}

// GetOrCreate returns the camera with the given address, creating it if it doesn't exist
func (r *Registry) GetOrCreate(mac easyip.MacAddress) *Camera {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, exists := r.cameras[mac]; exists {
		return c
	}

	c := NewCamera(mac)
	r.cameras[mac] = c
	return c
}

// Observe records a decoded configuration and returns the camera it belongs to
func (r *Registry) Observe(config easyip.CameraConfiguration, source string) *Camera {
	c := r.GetOrCreate(config.MacAddress)
	c.Update(config, source)
	return c
}

// Get returns the camera with the given address, or nil if it doesn't exist
func (r *Registry) Get(mac easyip.MacAddress) *Camera {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cameras[mac]
}

// GetAll returns all cameras sorted by hardware address
func (r *Registry) GetAll() []*Camera {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Camera, 0, len(r.cameras))
	for _, c := range r.cameras {
		result = append(result, c)
	}

	sortByMac(result)
	return result
}

// GetActive returns all cameras that have replied within the timeout
func (r *Registry) GetActive(timeout time.Duration) []*Camera {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Camera, 0, len(r.cameras))
	for _, c := range r.cameras {
		if !c.IsStale(timeout) {
			result = append(result, c)
		}
	}

	sortByMac(result)
	return result
}

// Count returns the number of known cameras
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cameras)
}

// Remove removes a camera by hardware address
func (r *Registry) Remove(mac easyip.MacAddress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cameras, mac)
}

// PruneStale removes all cameras that haven't replied within the timeout
func (r *Registry) PruneStale(timeout time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for mac, c := range r.cameras {
		if c.IsStale(timeout) {
			delete(r.cameras, mac)
			pruned++
		}
	}
	return pruned
}

func sortByMac(cameras []*Camera) {
	sort.Slice(cameras, func(i, j int) bool {
		return bytes.Compare(cameras[i].MacAddress[:], cameras[j].MacAddress[:]) < 0
	})
}
