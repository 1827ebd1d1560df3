package stats

import (
	"errors"
	"sync"
	"time"

	"easyip-setup/internal/easyip"
)

// CameraStats tracks reply outcomes for a single camera
type CameraStats struct {
	MacAddress       easyip.MacAddress
	Replies          uint64
	Failures         uint64
	ChecksumFailures uint64
	LastReply        time.Time
	LastError        string
}

// Snapshot is a copy of the tracker totals (no mutex needed)
type Snapshot struct {
	Decoded          uint64
	Failed           uint64
	ChecksumFailures uint64
	ByKind           map[easyip.DecodeErrorKind]uint64
	MismatchByField  map[easyip.Field]uint64
}

// Tracker tracks decode outcomes for all received replies
type Tracker struct {
	decoded          uint64
	failed           uint64
	checksumFailures uint64
	byKind           map[easyip.DecodeErrorKind]uint64
	mismatchByField  map[easyip.Field]uint64
	cameras          map[easyip.MacAddress]*CameraStats
	repliesInWindow  []time.Time // For rate calculation
	rateWindow       time.Duration
	mu               sync.RWMutex
}

// NewTracker creates a new stats tracker
func NewTracker() *Tracker {
	return &Tracker{
		byKind:          make(map[easyip.DecodeErrorKind]uint64),
		mismatchByField: make(map[easyip.Field]uint64),
		cameras:         make(map[easyip.MacAddress]*CameraStats),
		rateWindow:      time.Second, // Calculate rate over 1 second window
	}
}

func (t *Tracker) camera(mac easyip.MacAddress) *CameraStats {
	cs, exists := t.cameras[mac]
	if !exists {
		cs = &CameraStats{MacAddress: mac}
		t.cameras[mac] = cs
	}
	return cs
}

// recordArrival adds a reply to the rate window and drops expired entries
func (t *Tracker) recordArrival(now time.Time) {
	t.repliesInWindow = append(t.repliesInWindow, now)

	cutoff := now.Add(-t.rateWindow)
	newWindow := t.repliesInWindow[:0]
	for _, rt := range t.repliesInWindow {
		if rt.After(cutoff) {
			newWindow = append(newWindow, rt)
		}
	}
	t.repliesInWindow = newWindow
}

// RecordReply records a successfully decoded reply
func (t *Tracker) RecordReply(mac easyip.MacAddress, checksumOK bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.decoded++
	t.recordArrival(now)

	cs := t.camera(mac)
	cs.Replies++
	cs.LastReply = now
	if !checksumOK {
		t.checksumFailures++
		cs.ChecksumFailures++
	}
}

// RecordFailure records a reply that could not be decoded. The hardware
// address is attributed when the header was long enough to carry one.
func (t *Tracker) RecordFailure(datagram []byte, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.failed++
	t.recordArrival(time.Now())

	var decodeErr *easyip.DecodeError
	if errors.As(err, &decodeErr) {
		t.byKind[decodeErr.Kind]++
		if decodeErr.Kind == easyip.KindMismatch {
			t.mismatchByField[decodeErr.Field]++
		}
	}

	if mac, ok := easyip.HardwareAddress(datagram); ok {
		cs := t.camera(mac)
		cs.Failures++
		if err != nil {
			cs.LastError = err.Error()
		}
	}
}

// GetCameraStats returns a copy of the stats for a camera, or nil if it never replied
func (t *Tracker) GetCameraStats(mac easyip.MacAddress) *CameraStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cs, exists := t.cameras[mac]
	if !exists {
		return nil
	}
	c := *cs
	return &c
}

// GetReplyRate returns replies per second over the rate window
func (t *Tracker) GetReplyRate() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cutoff := time.Now().Add(-t.rateWindow)
	count := 0
	for _, rt := range t.repliesInWindow {
		if rt.After(cutoff) {
			count++
		}
	}

	return float64(count) / t.rateWindow.Seconds()
}

// GetFailurePercentage returns the share of replies that failed to decode
func (t *Tracker) GetFailurePercentage() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := t.decoded + t.failed
	if total == 0 {
		return 0
	}

	return float64(t.failed) / float64(total) * 100
}

// GetSnapshot returns a copy of the totals
func (t *Tracker) GetSnapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Snapshot{
		Decoded:          t.decoded,
		Failed:           t.failed,
		ChecksumFailures: t.checksumFailures,
		ByKind:           make(map[easyip.DecodeErrorKind]uint64, len(t.byKind)),
		MismatchByField:  make(map[easyip.Field]uint64, len(t.mismatchByField)),
	}
	for k, v := range t.byKind {
		s.ByKind[k] = v
	}
	for f, v := range t.mismatchByField {
		s.MismatchByField[f] = v
	}
	return s
}

// ResetAllStats clears all tracked data
func (t *Tracker) ResetAllStats() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.decoded = 0
	t.failed = 0
	t.checksumFailures = 0
	t.byKind = make(map[easyip.DecodeErrorKind]uint64)
	t.mismatchByField = make(map[easyip.Field]uint64)
	t.cameras = make(map[easyip.MacAddress]*CameraStats)
	t.repliesInWindow = nil
}
