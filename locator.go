package sgsolar

import (
	"context"
	"sync"
	"time"
)

// DefaultLocateDelay is the quiet period between the last address edit and
// the actual network lookup.
const DefaultLocateDelay = 1200 * time.Millisecond

// Locator debounces geocoding requests. Every Request restarts the quiet
// period and cancels any lookup already in flight, so only the latest
// address ever reaches the apply callback. Results arriving for an older
// request are discarded.
type Locator struct {
	geo   Geocoder
	delay time.Duration
	apply func(lat, lon float64)

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

// NewLocator returns a locator that calls apply with the coordinates of the
// last requested address. A non-positive delay falls back to the default.
func NewLocator(geo Geocoder, delay time.Duration, apply func(lat, lon float64)) *Locator {
	if delay <= 0 {
		delay = DefaultLocateDelay
	}
	return &Locator{geo: geo, delay: delay, apply: apply}
}

// Request schedules a lookup of the address after the quiet period. It
// returns false without scheduling anything when the address is too
// incomplete to locate (street, number and city are all required).
func (l *Locator) Request(a Address) bool {
	query, ok := BuildGeocodeQuery(a)
	if !ok {
		l.Stop()
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	gen := l.gen
	l.stopLocked()
	l.timer = time.AfterFunc(l.delay, func() { l.fire(gen, query) })
	return true
}

// Stop cancels any pending or in-flight lookup.
func (l *Locator) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++ // invalidate results already computed but not yet applied
	l.stopLocked()
}

func (l *Locator) stopLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// fire runs the network lookup for one generation of Request.
func (l *Locator) fire(gen uint64, query string) {
	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.mu.Unlock()

	lat, lon, err := l.geo.Search(ctx, query)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return // a newer request took over while we were waiting
	}
	l.cancel = nil
	if err != nil {
		return
	}
	l.apply(lat, lon)
}
