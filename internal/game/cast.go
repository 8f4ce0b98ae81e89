package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/spellbook/internal/ability"
	"github.com/samdwyer/spellbook/internal/telemetry"
)

// Activation outcomes recorded on the ability.activate span.
const (
	outcomeCast      = "cast"
	outcomeCooldown  = "cooldown"
	outcomeNoCharges = "no_charges"
	outcomeNoSlot    = "no_slot"
)

// activate tries to use the ability in slot and reports the outcome.
func (g *Game) activate(ctx context.Context, slot int) {
	tracer := telemetry.Tracer("ability")
	_, span := tracer.Start(ctx, "ability.activate")
	defer span.End()

	span.SetAttributes(attribute.Int("slot", slot))

	inst := g.loadout.Slot(slot)
	if inst != nil {
		span.SetAttributes(
			attribute.String("identity", inst.Identity()),
			attribute.String("instance_id", inst.ID().String()),
		)
	}

	err := g.loadout.Activate(slot)
	outcome := outcomeFor(err)
	span.SetAttributes(attribute.String("outcome", outcome))

	switch outcome {
	case outcomeCast:
		g.message = "Cast " + inst.Name() + "!"
	case outcomeCooldown:
		g.message = inst.Name() + " is not ready."
	case outcomeNoCharges:
		g.message = inst.Name() + " has no charges left."
	case outcomeNoSlot:
		g.message = "Nothing bound to that slot."
	default:
		span.SetStatus(codes.Error, err.Error())
		g.message = err.Error()
	}
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return outcomeCast
	case errors.Is(err, ability.ErrAbilityNotAvailable):
		return outcomeCooldown
	case errors.Is(err, ability.ErrNoStacksAvailable):
		return outcomeNoCharges
	case errors.Is(err, ability.ErrNoSuchSlot):
		return outcomeNoSlot
	default:
		return "error"
	}
}
