// Package cooldown tracks an ability's own cooldown and the shared global
// cooldown as two independently decaying timers.
package cooldown

import (
	"errors"
	"time"
)

var (
	// ErrAbilityNotAvailable is returned when a cooldown is triggered while
	// it is still running. The scheduler never silently refreshes.
	ErrAbilityNotAvailable = errors.New("ability not available")

	// ErrNegativeDuration is returned when a trigger is given a negative total.
	ErrNegativeDuration = errors.New("cooldown duration must not be negative")
)

// Scheduler holds the cooldown state of one ability instance.
// The zero value is an idle scheduler with no cooldown configured.
type Scheduler struct {
	total     time.Duration
	remaining time.Duration

	globalTotal     time.Duration
	globalRemaining time.Duration
}

// Trigger starts both timers. It fails without changing state if the
// ability's own cooldown is still running or either total is negative.
func (s *Scheduler) Trigger(total, global time.Duration) error {
	if total < 0 || global < 0 {
		return ErrNegativeDuration
	}
	if s.remaining > 0 {
		return ErrAbilityNotAvailable
	}
	s.total = total
	s.remaining = total
	s.globalTotal = global
	s.globalRemaining = global
	return nil
}

// Advance decays both timers by dt, each floored at zero.
// A non-positive dt is a no-op.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.remaining = max(s.remaining-dt, 0)
	s.globalRemaining = max(s.globalRemaining-dt, 0)
}

// Reset clears both timers.
func (s *Scheduler) Reset() {
	s.remaining = 0
	s.globalRemaining = 0
}

// IsAvailable reports whether neither timer is running.
func (s *Scheduler) IsAvailable() bool {
	return s.remaining == 0 && s.globalRemaining == 0
}

// IsUnderGlobalCooldown reports whether the global cooldown is running.
func (s *Scheduler) IsUnderGlobalCooldown() bool {
	return s.globalRemaining > 0
}

// Progress returns the remaining fraction of whichever gate is binding, in
// [0,1]. While the global cooldown runs it reports that; otherwise the
// ability's own cooldown.
func (s *Scheduler) Progress() float64 {
	if s.IsUnderGlobalCooldown() {
		return fraction(s.globalRemaining, s.globalTotal)
	}
	return fraction(s.remaining, s.total)
}

// Remaining returns the time left on the gate Progress reports.
func (s *Scheduler) Remaining() time.Duration {
	if s.IsUnderGlobalCooldown() {
		return s.globalRemaining
	}
	return s.remaining
}

// CooldownRemaining returns the time left on the ability's own cooldown.
func (s *Scheduler) CooldownRemaining() time.Duration {
	return s.remaining
}

// GlobalRemaining returns the time left on the global cooldown.
func (s *Scheduler) GlobalRemaining() time.Duration {
	return s.globalRemaining
}

func fraction(remaining, total time.Duration) float64 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	f := float64(remaining) / float64(total)
	return min(f, 1)
}
