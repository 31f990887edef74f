// Package biztime is the calendar-day source for billing. All storage uses
// UTC; the business timezone only decides where one billing day ends and the
// next begins.
//
// A calendar day is represented as a time.Time at 00:00 UTC carrying the
// business-local year, month and day. That is the shape pgx returns for DATE
// columns, so values compare directly with what comes back from the store.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DateLayout = "2006-01-02"

// Clock is the time source injected into every component that needs "today".
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewClock returns a wall clock whose days follow tz.
func NewClock(tz string) (Clock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	return systemClock{loc: loc}, nil
}

// MustClock is NewClock that panics, for wiring code with validated config.
func MustClock(tz string) Clock {
	c, err := NewClock(tz)
	if err != nil {
		panic(err)
	}
	return c
}

func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (c systemClock) Today() time.Time {
	return DateOf(time.Now(), c.loc)
}

// DateOf returns the business date of t in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b name the same calendar day. Both are
// expected to be dates produced by this package or read from a DATE column.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Format renders a date for SQL parameters.
func Format(d time.Time) string {
	return d.UTC().Format(DateLayout)
}

// FixedClock is a settable clock for tests.
type FixedClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now.UTC()}
}

func (c *FixedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *FixedClock) Today() time.Time {
	return DateOf(c.Now(), time.UTC)
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
