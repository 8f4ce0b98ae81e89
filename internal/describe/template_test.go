package describe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/spellbook/data"
	"github.com/samdwyer/spellbook/internal/gamedata"
)

func solarBurn(template ...string) *gamedata.AbilityDefinition {
	return &gamedata.AbilityDefinition{
		Identity:            "SolarBurnSpell",
		Name:                "Solar Burn",
		Damages:             []int{120, 40},
		DamageKinds:         []string{"fire", "physical"},
		OtherValues:         []string{"3", "25%"},
		MaxStacks:           2,
		DescriptionTemplate: template,
	}
}

func TestRenderSubstitutesAndHighlights(t *testing.T) {
	def := solarBurn("Deals {damage:0} {kind:0} damage for {value:0}s.")

	lines, err := Render(def)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	want := Line{
		{Text: "Deals ", Field: FieldText, Index: -1},
		{Text: "120", Highlight: true, Field: FieldDamage, Index: 0, DamageKind: "fire"},
		{Text: " ", Field: FieldText, Index: -1},
		{Text: "fire", Highlight: true, Field: FieldDamageKind, Index: 0, DamageKind: "fire"},
		{Text: " damage for ", Field: FieldText, Index: -1},
		{Text: "3", Highlight: true, Field: FieldValue, Index: 0},
		{Text: "s.", Field: FieldText, Index: -1},
	}
	assert.Equal(t, want, lines[0])
	assert.Equal(t, "Deals 120 fire damage for 3s.", lines[0].String())
}

func TestRenderMultipleLines(t *testing.T) {
	def := solarBurn(
		"Hit for {damage:1} {kind:1}.",
		"Holds {stacks} charges, stuns below {value:1}.",
		"No placeholders here.",
	)

	lines, err := Render(def)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Hit for 40 physical.",
		"Holds 2 charges, stuns below 25%.",
		"No placeholders here.",
	}, Plain(lines))

	last := lines[2]
	require.Len(t, last, 1)
	assert.False(t, last[0].Highlight)
}

func TestRenderEscapedBraces(t *testing.T) {
	lines, err := Render(solarBurn("Literal {{damage:0}} and }} stay."))
	require.NoError(t, err)
	assert.Equal(t, "Literal {damage:0} and } stay.", lines[0].String())
	for _, f := range lines[0] {
		assert.False(t, f.Highlight)
	}
}

func TestRenderIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		template []string
		line     int
		field    Field
		index    int
		length   int
	}{
		{"damage past end", []string{"ok {damage:0}", "bad {damage:2}"}, 1, FieldDamage, 2, 2},
		{"kind past end", []string{"{kind:5}"}, 0, FieldDamageKind, 5, 2},
		{"value past end", []string{"x", "y", "{value:2}"}, 2, FieldValue, 2, 2},
		{"negative index", []string{"{damage:-1}"}, 0, FieldDamage, -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Render(solarBurn(tt.template...))
			require.Error(t, err)
			assert.Nil(t, lines, "no partial output on error")
			assert.True(t, errors.Is(err, ErrTemplateIndex))

			var ierr *TemplateIndexError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tt.line, ierr.Line)
			assert.Equal(t, tt.field, ierr.Field)
			assert.Equal(t, tt.index, ierr.Index)
			assert.Equal(t, tt.length, ierr.Len)
		})
	}
}

func TestRenderSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"unterminated", "Deals {damage:0 damage"},
		{"unknown name", "Deals {heal:0}"},
		{"missing index", "Deals {damage}"},
		{"bad index", "Deals {damage:x}"},
		{"indexed stacks", "Holds {stacks:1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Render(solarBurn(tt.template))
			require.Error(t, err)
			assert.Nil(t, lines)
			assert.ErrorIs(t, err, ErrTemplateSyntax)
		})
	}
}

func TestRenderEmbeddedDefinitions(t *testing.T) {
	store := gamedata.Open(context.Background(), data.FS(), data.DefinitionFiles...)
	require.NoError(t, store.Err())

	for _, d := range store.All() {
		_, err := Render(&d)
		assert.NoError(t, err, d.Identity)
	}
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "damage", FieldDamage.String())
	assert.Equal(t, "kind", FieldDamageKind.String())
	assert.Equal(t, "value", FieldValue.String())
	assert.Equal(t, "stacks", FieldStacks.String())
	assert.Equal(t, "unknown", Field(42).String())
}
