// Package stack implements a bounded charge counter that recharges one
// charge at a time on its own timer.
package stack

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoStacksAvailable is the error kind for consuming from an empty resource.
var ErrNoStacksAvailable = errors.New("no stacks available")

// Resource is a stack counter with continuous regeneration.
// Charges never exceed the cap, and no recharge time accrues at the cap.
type Resource struct {
	current   int
	max       int
	total     time.Duration
	remaining time.Duration
}

// Option configures a Resource.
type Option func(*Resource)

// WithCurrent starts the resource with n charges instead of full.
// Values outside [0, max] are clamped.
func WithCurrent(n int) Option {
	return func(r *Resource) {
		r.current = min(max(n, 0), r.max)
	}
}

// New creates a full resource holding up to maxStacks charges, each taking
// recharge to regenerate.
func New(maxStacks int, recharge time.Duration, opts ...Option) (*Resource, error) {
	if maxStacks <= 0 {
		return nil, fmt.Errorf("max stacks must be positive, got %d", maxStacks)
	}
	if recharge <= 0 {
		return nil, fmt.Errorf("stack recharge must be positive, got %s", recharge)
	}

	r := &Resource{
		current: maxStacks,
		max:     maxStacks,
		total:   recharge,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.current < r.max {
		r.remaining = r.total
	}
	return r, nil
}

// Consume spends one charge. It returns false without changing anything when
// the resource is empty. Spending from a full resource starts the recharge
// timer; a timer already running is left alone.
func (r *Resource) Consume() bool {
	if r.current == 0 {
		return false
	}
	r.current--
	if r.remaining == 0 {
		r.remaining = r.total
	}
	return true
}

// Advance runs the recharge timer for dt. Time left over after a charge
// completes carries into the next cycle until the cap is reached.
func (r *Resource) Advance(dt time.Duration) {
	for dt > 0 && r.current < r.max {
		if dt < r.remaining {
			r.remaining -= dt
			return
		}
		dt -= r.remaining
		r.current++
		if r.current < r.max {
			r.remaining = r.total
		} else {
			r.remaining = 0
		}
	}
}

// Reset refills the resource and stops the timer.
func (r *Resource) Reset() {
	r.current = r.max
	r.remaining = 0
}

// Current returns the number of charges available.
func (r *Resource) Current() int {
	return r.current
}

// Max returns the charge cap.
func (r *Resource) Max() int {
	return r.max
}

// Remaining returns the time until the next charge, 0 at the cap.
func (r *Resource) Remaining() time.Duration {
	return r.remaining
}

// RechargeProgress returns how far the current charge has recharged, in
// [0,1]. It is 0 at the cap.
func (r *Resource) RechargeProgress() float64 {
	if r.current >= r.max || r.total <= 0 {
		return 0
	}
	return 1 - float64(r.remaining)/float64(r.total)
}
