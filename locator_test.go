package sgsolar

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// recordingGeo answers every query with fixed coordinates and remembers the
// queries it saw.
type recordingGeo struct {
	mu      sync.Mutex
	queries []string
}

func (g *recordingGeo) Search(ctx context.Context, query string) (float64, float64, error) {
	g.mu.Lock()
	g.queries = append(g.queries, query)
	g.mu.Unlock()
	return -30, -51, nil
}

func (g *recordingGeo) seen() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.queries...)
}

func TestLocatorDebounce(t *testing.T) {
	geo := &recordingGeo{}
	applied := make(chan [2]float64, 4)
	loc := NewLocator(geo, 30*time.Millisecond, func(lat, lon float64) {
		applied <- [2]float64{lat, lon}
	})

	// Two edits in quick succession: only the second survives the quiet
	// period.
	loc.Request(Address{Street: "Rua A", Number: "1", City: "Canoas"})
	loc.Request(Address{Street: "Rua B", Number: "2", City: "Canoas"})

	select {
	case got := <-applied:
		if got != [2]float64{-30, -51} {
			t.Errorf("applied %v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no coordinates applied")
	}
	select {
	case got := <-applied:
		t.Fatalf("stale request applied too: %v", got)
	case <-time.After(100 * time.Millisecond):
	}

	queries := geo.seen()
	if len(queries) != 1 || !strings.HasPrefix(queries[0], "Rua B") {
		t.Errorf("lookups fired: %q, want only Rua B", queries)
	}
}

func TestLocatorRejectsIncompleteAddress(t *testing.T) {
	geo := &recordingGeo{}
	loc := NewLocator(geo, time.Millisecond, func(lat, lon float64) {
		t.Errorf("apply called for an incomplete address")
	})

	if loc.Request(Address{Street: "Rua A", City: "Canoas"}) {
		t.Errorf("Request accepted an address without a number")
	}
	time.Sleep(50 * time.Millisecond)
	if len(geo.seen()) != 0 {
		t.Errorf("lookup fired for an incomplete address")
	}
}

// blockingGeo parks every Search until released or cancelled.
type blockingGeo struct {
	started chan string
	release chan struct{}
}

func (g *blockingGeo) Search(ctx context.Context, query string) (float64, float64, error) {
	g.started <- query
	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	case <-g.release:
		return -30, -51, nil
	}
}

func TestLocatorCancelsInFlightLookup(t *testing.T) {
	geo := &blockingGeo{started: make(chan string, 2), release: make(chan struct{})}
	applied := make(chan float64, 2)
	loc := NewLocator(geo, time.Millisecond, func(lat, lon float64) { applied <- lat })

	loc.Request(Address{Street: "Rua A", Number: "1", City: "Canoas"})
	<-geo.started // first lookup is now in flight

	// A new edit arrives while the first lookup is still waiting on the
	// network: the old one must be cancelled, its result never applied.
	loc.Request(Address{Street: "Rua B", Number: "2", City: "Canoas"})

	select {
	case q := <-geo.started:
		if !strings.HasPrefix(q, "Rua B") {
			t.Fatalf("second lookup is %q", q)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second lookup never started")
	}
	close(geo.release)

	select {
	case <-applied:
	case <-time.After(2 * time.Second):
		t.Fatal("no coordinates applied")
	}
	select {
	case <-applied:
		t.Fatal("cancelled lookup applied its result")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLocatorStop(t *testing.T) {
	geo := &recordingGeo{}
	loc := NewLocator(geo, 20*time.Millisecond, func(lat, lon float64) {
		t.Errorf("apply called after Stop")
	})

	loc.Request(Address{Street: "Rua A", Number: "1", City: "Canoas"})
	loc.Stop()

	time.Sleep(100 * time.Millisecond)
	if len(geo.seen()) != 0 {
		t.Errorf("lookup fired after Stop")
	}
}
