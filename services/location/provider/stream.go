package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ridepulse/ridepulse/internal/pkg/models"
	"github.com/ridepulse/ridepulse/internal/utils"
	"github.com/ridepulse/ridepulse/services/location"
)

// StreamProvider bridges raw device samples, delivered over the driver's
// websocket, to at most one filtered watch per driver. The watch applies the
// tracking profile's distance filter and reporting interval; CurrentPosition
// waits for the next raw sample so SOS can request a fresh fix.
type StreamProvider struct {
	mu      sync.Mutex
	watches map[string]*watch
	last    map[string]models.Location
	waiters map[string][]chan models.Location
}

type watch struct {
	profile models.TrackingProfile
	fn      func(models.Location)

	emitted    bool
	lastEmit   models.Location
	lastEmitAt time.Time
}

// NewStreamProvider creates an empty provider
func NewStreamProvider() *StreamProvider {
	return &StreamProvider{
		watches: make(map[string]*watch),
		last:    make(map[string]models.Location),
		waiters: make(map[string][]chan models.Location),
	}
}

// Watch registers the driver's single subscription. The caller owns teardown
// ordering: an existing watch must be stopped before a new one is created.
func (p *StreamProvider) Watch(driverID string, profile models.TrackingProfile, fn func(models.Location)) (location.WatchHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.watches[driverID]; ok {
		return nil, fmt.Errorf("driver %s: %w", driverID, location.ErrWatchActive)
	}

	w := &watch{profile: profile, fn: fn}
	p.watches[driverID] = w
	return &watchHandle{provider: p, driverID: driverID, watch: w}, nil
}

// Offer delivers a raw device sample. Waiters always get the sample; the
// watch callback fires only when the profile's filters pass.
func (p *StreamProvider) Offer(driverID string, loc models.Location) {
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}

	p.mu.Lock()
	p.last[driverID] = loc

	for _, ch := range p.waiters[driverID] {
		ch <- loc
	}
	delete(p.waiters, driverID)

	w := p.watches[driverID]
	var fn func(models.Location)
	if w != nil && w.accept(loc) {
		fn = w.fn
	}
	p.mu.Unlock()

	if fn != nil {
		fn(loc)
	}
}

// accept decides whether a sample passes the profile's filters. A sample is
// emitted when it is the first one, when the driver moved at least the
// distance filter, or when the interval elapsed (stationary heartbeat).
func (w *watch) accept(loc models.Location) bool {
	if !w.emitted {
		w.emit(loc)
		return true
	}

	movedM := utils.CalculateDistance(
		utils.GeoPoint{Latitude: w.lastEmit.Latitude, Longitude: w.lastEmit.Longitude},
		utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude},
	) * 1000
	if movedM >= w.profile.DistanceFilter || time.Since(w.lastEmitAt) >= w.profile.Interval {
		w.emit(loc)
		return true
	}
	return false
}

func (w *watch) emit(loc models.Location) {
	w.emitted = true
	w.lastEmit = loc
	w.lastEmitAt = time.Now()
}

// CurrentPosition blocks until the next raw sample arrives or the context
// expires. It never serves a cached sample; freshness is the point.
func (p *StreamProvider) CurrentPosition(ctx context.Context, driverID string) (models.Location, error) {
	ch := make(chan models.Location, 1)

	p.mu.Lock()
	p.waiters[driverID] = append(p.waiters[driverID], ch)
	p.mu.Unlock()

	select {
	case loc := <-ch:
		return loc, nil
	case <-ctx.Done():
		p.mu.Lock()
		remaining := p.waiters[driverID][:0]
		for _, c := range p.waiters[driverID] {
			if c != ch {
				remaining = append(remaining, c)
			}
		}
		if len(remaining) == 0 {
			delete(p.waiters, driverID)
		} else {
			p.waiters[driverID] = remaining
		}
		p.mu.Unlock()
		return models.Location{}, fmt.Errorf("waiting for location fix: %w", ctx.Err())
	}
}

// LastKnownPosition returns the most recent raw sample for the driver
func (p *StreamProvider) LastKnownPosition(driverID string) (models.Location, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	loc, ok := p.last[driverID]
	return loc, ok
}

type watchHandle struct {
	provider *StreamProvider
	driverID string
	watch    *watch
}

// Stop removes the watch. Idempotent, and a no-op if a newer watch has
// already replaced this one.
func (h *watchHandle) Stop() {
	h.provider.mu.Lock()
	defer h.provider.mu.Unlock()

	if h.provider.watches[h.driverID] == h.watch {
		delete(h.provider.watches, h.driverID)
	}
}
