package capture

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"easyip-setup/internal/easyip"
)

// Result is the outcome of decoding one captured reply
type Result struct {
	Datagram   Datagram
	Config     easyip.CameraConfiguration
	ChecksumOK bool
	Err        error
	ReceivedAt time.Time
}

// Replayer feeds captured replies through the decoder as if they had just
// arrived, one result per datagram.
type Replayer struct {
	datagrams []Datagram
	interval  time.Duration
	results   chan *Result
	cancel    context.CancelFunc
	mu        sync.RWMutex
	started   bool
}

// NewReplayer creates a replayer that waits interval between datagrams
func NewReplayer(datagrams []Datagram, interval time.Duration) *Replayer {
	return &Replayer{
		datagrams: datagrams,
		interval:  interval,
		results:   make(chan *Result, 64),
	}
}

// Results returns the channel of decode results. It is closed once every
// datagram was replayed or the replayer stopped.
func (r *Replayer) Results() <-chan *Result {
	return r.results
}

// Start begins replaying
func (r *Replayer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return fmt.Errorf("replayer already started")
	}
	r.started = true

	ctx, r.cancel = context.WithCancel(ctx)
	go r.replay(ctx)

	return nil
}

func (r *Replayer) replay(ctx context.Context) {
	defer close(r.results)

	for i, d := range r.datagrams {
		if i > 0 && r.interval > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(r.interval):
			}
		}

		result := DecodeDatagram(d)
		if result.Err != nil {
			log.Debugf("dropping reply from %s (line %d): %v", sourceOrUnknown(d.Source), d.Line, result.Err)
		} else if !result.ChecksumOK {
			log.Debugf("reply from %s (line %d) has a bad trailer checksum", sourceOrUnknown(d.Source), d.Line)
		}

		select {
		case <-ctx.Done():
			return
		case r.results <- result:
		}
	}
}

// Stop stops the replayer
func (r *Replayer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}
}

// DecodeDatagram decodes a single captured reply
func DecodeDatagram(d Datagram) *Result {
	config, err := easyip.Decode(d.Payload)
	return &Result{
		Datagram:   d,
		Config:     config,
		ChecksumOK: easyip.VerifyChecksum(d.Payload),
		Err:        err,
		ReceivedAt: time.Now(),
	}
}

func sourceOrUnknown(source string) string {
	if source == "" {
		return "unknown sender"
	}
	return source
}
