// Package ability binds static definitions to runtime cooldown and stack
// state. An Instance is what presentation and gameplay code talk to.
package ability

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/spellbook/internal/cooldown"
	"github.com/samdwyer/spellbook/internal/describe"
	"github.com/samdwyer/spellbook/internal/gamedata"
	"github.com/samdwyer/spellbook/internal/stack"
)

var (
	// ErrAbilityNotAvailable means a cooldown or the global cooldown is running.
	ErrAbilityNotAvailable = cooldown.ErrAbilityNotAvailable

	// ErrNoStacksAvailable means the gates are clear but no charge is left.
	ErrNoStacksAvailable = stack.ErrNoStacksAvailable
)

// DefinitionSource resolves a definition by identity.
// *gamedata.Store satisfies it.
type DefinitionSource interface {
	Lookup(identity string) (*gamedata.AbilityDefinition, error)
}

// Variant describes one kind of ability: the identity it binds to and the
// timings that are not part of the data file.
type Variant struct {
	Identity       string
	Cooldown       time.Duration
	GlobalCooldown time.Duration // 0 if exempt from the global cooldown
	StackRecharge  time.Duration // Required when the definition has stacks
}

// Instance is one runtime ability. Its cooldown and stack state are owned
// exclusively by the instance and only change through Activate, Advance
// and Reset.
type Instance struct {
	id      uuid.UUID
	variant Variant
	def     *gamedata.AbilityDefinition
	cd      cooldown.Scheduler
	stacks  *stack.Resource // nil unless the definition declares stacks
}

// New binds a variant to its definition. Lookup failures are returned
// unchanged so callers can match gamedata.ErrDataUnavailable and
// gamedata.ErrDefinitionNotFound.
func New(src DefinitionSource, v Variant) (*Instance, error) {
	if v.Cooldown < 0 || v.GlobalCooldown < 0 {
		return nil, fmt.Errorf("variant %s: %w", v.Identity, cooldown.ErrNegativeDuration)
	}

	def, err := src.Lookup(v.Identity)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		id:      uuid.New(),
		variant: v,
		def:     def,
	}
	if def.HasStacks() {
		inst.stacks, err = stack.New(def.MaxStacks, v.StackRecharge)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v.Identity, err)
		}
	}
	return inst, nil
}

// Activate uses the ability: it checks availability, spends a stack if the
// ability has them, and starts the cooldowns. On failure nothing changes.
func (i *Instance) Activate() error {
	if !i.cd.IsAvailable() {
		return ErrAbilityNotAvailable
	}
	if i.stacks != nil && i.stacks.Current() == 0 {
		return ErrNoStacksAvailable
	}

	if i.stacks != nil {
		i.stacks.Consume()
	}
	// Cannot fail: availability was checked and durations validated in New.
	return i.cd.Trigger(i.variant.Cooldown, i.variant.GlobalCooldown)
}

// Advance runs every timer of the instance for dt.
func (i *Instance) Advance(dt time.Duration) {
	i.cd.Advance(dt)
	if i.stacks != nil {
		i.stacks.Advance(dt)
	}
}

// Reset clears cooldowns and refills stacks.
func (i *Instance) Reset() {
	i.cd.Reset()
	if i.stacks != nil {
		i.stacks.Reset()
	}
}

// IsAvailable reports whether Activate would succeed.
func (i *Instance) IsAvailable() bool {
	return i.cd.IsAvailable() && (i.stacks == nil || i.stacks.Current() > 0)
}

// IsUnderGlobalCooldown reports whether the global cooldown is running.
func (i *Instance) IsUnderGlobalCooldown() bool {
	return i.cd.IsUnderGlobalCooldown()
}

// Progress returns the remaining fraction of the binding cooldown gate.
func (i *Instance) Progress() float64 {
	return i.cd.Progress()
}

// Remaining returns the time left on the binding cooldown gate.
func (i *Instance) Remaining() time.Duration {
	return i.cd.Remaining()
}

// HasStacks reports whether the instance carries a stack resource.
func (i *Instance) HasStacks() bool {
	return i.stacks != nil
}

// CurrentStacks returns the available charges, 0 without a stack resource.
func (i *Instance) CurrentStacks() int {
	if i.stacks == nil {
		return 0
	}
	return i.stacks.Current()
}

// MaxStacks returns the charge cap, 0 without a stack resource.
func (i *Instance) MaxStacks() int {
	if i.stacks == nil {
		return 0
	}
	return i.stacks.Max()
}

// RechargeProgress returns the recharge progress of the next charge.
func (i *Instance) RechargeProgress() float64 {
	if i.stacks == nil {
		return 0
	}
	return i.stacks.RechargeProgress()
}

// RenderDescription renders the definition's description template.
func (i *Instance) RenderDescription() ([]describe.Line, error) {
	return describe.Render(i.def)
}

// ID returns the unique id of this instance.
func (i *Instance) ID() uuid.UUID { return i.id }

// Identity returns the definition identity the instance is bound to.
func (i *Instance) Identity() string { return i.variant.Identity }

// Name returns the display name from the definition.
func (i *Instance) Name() string { return i.def.Name }

// Definition returns the shared, read-only definition.
func (i *Instance) Definition() *gamedata.AbilityDefinition { return i.def }

// Variant returns the timings the instance was built with.
func (i *Instance) Variant() Variant { return i.variant }
