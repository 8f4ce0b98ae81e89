// Package spells declares the ability variants of each class kit.
// Every variant carries the identity constant of its definition record.
package spells

import (
	"time"

	"github.com/samdwyer/spellbook/internal/ability"
)

// Identities of the Fire Mage kit.
const (
	SolarBurn  = "SolarBurnSpell"
	Fireball   = "FireballSpell"
	FlameDash  = "FlameDashSpell"
	Combustion = "CombustionSpell"
	Ignition   = "IgnitionPassive"
)

// GlobalCooldown is the shared pacing gate of the Fire Mage kit.
const GlobalCooldown = 1500 * time.Millisecond

// FireMage returns the Fire Mage bar in slot order.
func FireMage() []ability.Variant {
	return []ability.Variant{
		{Identity: Fireball, Cooldown: 0, GlobalCooldown: GlobalCooldown},
		{Identity: SolarBurn, Cooldown: 8 * time.Second, GlobalCooldown: GlobalCooldown},
		{Identity: FlameDash, Cooldown: 500 * time.Millisecond, StackRecharge: 10 * time.Second},
		{Identity: Combustion, Cooldown: 45 * time.Second, GlobalCooldown: GlobalCooldown},
		// Passive: never gated, charges come from the definition.
		{Identity: Ignition, StackRecharge: 4 * time.Second},
	}
}

// Lookup returns the catalogued variant for an identity.
func Lookup(identity string) (ability.Variant, bool) {
	for _, v := range FireMage() {
		if v.Identity == identity {
			return v, true
		}
	}
	return ability.Variant{}, false
}
