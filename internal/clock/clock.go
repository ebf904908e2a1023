// Package clock supplies wall-clock readings and identifiers to the tracker.
package clock

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time in the host's local zone.
type Clock interface {
	Now() time.Time
}

// IDSource hands out collision-resistant identifiers.
type IDSource interface {
	NewID() string
}

// System reads the host clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// UUIDSource generates time-ordered UUIDs so ids sort by creation.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Manual is a settable clock for tests and replays.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock reading t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
