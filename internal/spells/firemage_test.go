package spells

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/spellbook/data"
	"github.com/samdwyer/spellbook/internal/ability"
	"github.com/samdwyer/spellbook/internal/gamedata"
)

func TestFireMageBindsToEmbeddedData(t *testing.T) {
	store := gamedata.Open(context.Background(), data.FS(), data.DefinitionFiles...)
	require.NoError(t, store.Err())

	l, err := ability.NewLoadout(store, FireMage()...)
	require.NoError(t, err)
	require.Equal(t, len(FireMage()), l.Len())

	for _, inst := range l.Slots() {
		_, err := inst.RenderDescription()
		assert.NoError(t, err, inst.Identity())
	}

	dash := l.Slot(2)
	assert.Equal(t, FlameDash, dash.Identity())
	assert.Equal(t, 3, dash.MaxStacks())
}

func TestLookup(t *testing.T) {
	v, ok := Lookup(SolarBurn)
	require.True(t, ok)
	assert.Equal(t, GlobalCooldown, v.GlobalCooldown)

	_, ok = Lookup("solarburnspell")
	assert.False(t, ok)
}
