// Package scanner simulates the barcode capture flow: a scan session
// acquires the capture device, "detects" a product after a fixed delay,
// and releases the device on every exit path, including explicit stop and
// context cancellation.
package scanner

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// DetectionDelay is how long a scan takes before it completes.
const DetectionDelay = 2500 * time.Millisecond

// ErrBusy is returned when a scan is started while one is in flight.
var ErrBusy = errors.New("scanner: a scan is already running")

// productCatalog simulates the barcode lookup database.
var productCatalog = []string{
	"Tomato Basil Sauce",
	"Hazelnut Spread",
	"Organic Orange Juice",
	"Plain Yogurt x4",
	"Pack of Pasta",
	"Basmati Rice",
	"Canned Corn",
	"Chocolate Bar",
}

// CaptureDevice is the camera resource a scan holds for its lifetime.
type CaptureDevice interface {
	Acquire() error
	Release()
}

// SimulatedDevice is the default capture device: acquisition always
// succeeds, since the real camera lives on the UI side.
type SimulatedDevice struct{}

func (SimulatedDevice) Acquire() error { return nil }
func (SimulatedDevice) Release()       {}

// Result is a completed detection.
type Result struct {
	ProductName string `json:"productName"`
}

// Scanner runs at most one scan session at a time.
type Scanner struct {
	mu      sync.Mutex
	device  CaptureDevice
	active  bool
	stop    context.CancelFunc
	delay   time.Duration
	pick    func(n int) int
	results chan Result
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDelay overrides the detection delay, for tests.
func WithDelay(d time.Duration) Option {
	return func(s *Scanner) { s.delay = d }
}

// WithPick overrides the catalog random source, for tests.
func WithPick(pick func(n int) int) Option {
	return func(s *Scanner) { s.pick = pick }
}

// New creates a scanner over the given capture device.
func New(device CaptureDevice, opts ...Option) *Scanner {
	s := &Scanner{
		device:  device,
		delay:   DetectionDelay,
		pick:    rand.Intn,
		results: make(chan Result, 1),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Results delivers completed detections.
func (s *Scanner) Results() <-chan Result {
	return s.results
}

// Start acquires the capture device and begins a scan. The scan completes
// unconditionally after the detection delay unless stopped or the context
// is cancelled; in every case the device is released.
func (s *Scanner) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return ErrBusy
	}
	if err := s.device.Acquire(); err != nil {
		s.mu.Unlock()
		return err
	}
	scanCtx, cancel := context.WithCancel(ctx)
	s.active = true
	s.stop = cancel
	s.mu.Unlock()

	go s.run(scanCtx)
	return nil
}

// Stop cancels the in-flight scan, if any, and releases the device. It is
// safe to call at any time, including after completion.
func (s *Scanner) Stop() {
	s.mu.Lock()
	stop := s.stop
	s.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Active reports whether a scan is in flight.
func (s *Scanner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Scanner) run(ctx context.Context) {
	defer s.finish()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	name := productCatalog[s.pick(len(productCatalog))]
	select {
	case s.results <- Result{ProductName: name}:
	default:
		// Nobody picked up the previous result; drop the new one.
	}
}

// finish releases the device exactly once per session.
func (s *Scanner) finish() {
	s.mu.Lock()
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.active = false
	s.mu.Unlock()
	s.device.Release()
}
