package gamedata

// =============================================================================
// DEFINITION DATA
// =============================================================================
//
// Overview:
// ---------
// Every ability and passive in the game has one static definition record.
// Records live in data files (abilities.json, passives.json) and are loaded
// once at startup. Runtime abilities bind to their record by identity.
//
// Record Schema:
// --------------
// {
//   "identity": "SolarBurnSpell",
//   "name": "Solar Burn",
//   "damages": [120, 40],
//   "damage_kinds": ["fire", "fire"],
//   "other_values": ["3", "25%"],
//   "max_stacks": 0,
//   "description_template": [
//     "Calls down a sun shard dealing {damage:0} {kind:0} damage.",
//     "Burns the ground for {value:0}s, {damage:1} {kind:1} damage per second."
//   ]
// }
//
// Placeholders in description_template are rendered by package describe.
//
// Identity Rules:
// ---------------
// - Lookup is an exact, case-sensitive match.
// - When two records share an identity, the first one in source order wins.
// - A record failing validation is skipped; the rest of the file still loads.

import (
	"errors"
	"fmt"
)

// AbilityDefinition is the immutable static record for one ability or passive.
// Definitions are shared read-only between every instance bound to them.
type AbilityDefinition struct {
	Identity            string   `json:"identity" yaml:"identity"`
	Name                string   `json:"name" yaml:"name"`
	Damages             []int    `json:"damages" yaml:"damages"`
	DamageKinds         []string `json:"damage_kinds" yaml:"damage_kinds"`
	OtherValues         []string `json:"other_values" yaml:"other_values"`
	MaxStacks           int      `json:"max_stacks" yaml:"max_stacks"`
	DescriptionTemplate []string `json:"description_template" yaml:"description_template"`
}

// HasStacks returns true if instances of this definition carry a stack resource.
func (d *AbilityDefinition) HasStacks() bool {
	return d.MaxStacks > 0
}

// Validate checks the required fields of a record.
func (d *AbilityDefinition) Validate() error {
	var errs []error
	if d.Identity == "" {
		errs = append(errs, errors.New("identity is required"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(d.Damages) != len(d.DamageKinds) {
		errs = append(errs, fmt.Errorf("damages has %d entries but damage_kinds has %d",
			len(d.Damages), len(d.DamageKinds)))
	}
	if d.MaxStacks < 0 {
		errs = append(errs, fmt.Errorf("max_stacks must be >= 0, got %d", d.MaxStacks))
	}
	if len(d.DescriptionTemplate) == 0 {
		errs = append(errs, errors.New("description_template needs at least one line"))
	}
	return errors.Join(errs...)
}
