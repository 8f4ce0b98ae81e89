package ability

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoSuchSlot is returned when activating a slot the loadout doesn't have.
var ErrNoSuchSlot = errors.New("no such ability slot")

// Loadout is the ordered ability bar of one controlling entity.
// All of its instances are advanced together once per tick.
type Loadout struct {
	slots []*Instance
}

// NewLoadout binds every variant in order. Variants that fail to bind are
// left out; their errors are joined and returned alongside the loadout so
// one broken definition doesn't take the whole bar down.
func NewLoadout(src DefinitionSource, variants ...Variant) (*Loadout, error) {
	l := &Loadout{slots: make([]*Instance, 0, len(variants))}

	var errs []error
	for _, v := range variants {
		inst, err := New(src, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		l.slots = append(l.slots, inst)
	}
	return l, errors.Join(errs...)
}

// Tick advances every instance by dt.
func (l *Loadout) Tick(dt time.Duration) {
	for _, inst := range l.slots {
		inst.Advance(dt)
	}
}

// Activate activates the ability in the given slot.
func (l *Loadout) Activate(slot int) error {
	inst := l.Slot(slot)
	if inst == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchSlot, slot)
	}
	return inst.Activate()
}

// Slot returns the instance in slot, or nil.
func (l *Loadout) Slot(slot int) *Instance {
	if slot < 0 || slot >= len(l.slots) {
		return nil
	}
	return l.slots[slot]
}

// Slots returns all instances in bar order.
func (l *Loadout) Slots() []*Instance {
	return l.slots
}

// Len returns the number of slots.
func (l *Loadout) Len() int {
	return len(l.slots)
}

// Reset clears every cooldown and refills every stack.
func (l *Loadout) Reset() {
	for _, inst := range l.slots {
		inst.Reset()
	}
}
