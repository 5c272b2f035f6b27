package storage

import (
	"testing"

	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyStore(t *testing.T) {
	input := map[string][]string{
		"Kandy":   {"Perahera Dialogues", "Merchant Microgrants", "Hindu Temple Fairs"},
		"Colombo": {"Buddhist Service Hubs"},
		"Empty":   {},
	}
	themes := []model.Theme{{Name: "Interfaith Dialogue", Districts: []string{"Colombo"}}}

	store := NewStrategyStore(input, themes)

	assert.Equal(t, []string{"Perahera Dialogues", "Merchant Microgrants", "Hindu Temple Fairs"}, store.Strategies("Kandy"))
	assert.True(t, store.HasStrategies("Kandy"))
	assert.Equal(t, 3, store.Count("Kandy"))

	missing := store.Strategies("Mannar")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
	assert.False(t, store.HasStrategies("Mannar"))
	assert.Equal(t, 0, store.Count("Mannar"))

	assert.False(t, store.HasStrategies("Empty"))
	assert.Equal(t, []string{"Colombo", "Kandy"}, store.Districts())
	assert.Equal(t, themes, store.Themes())
}

func TestStrategyStore_IsImmutable(t *testing.T) {
	input := map[string][]string{"Kandy": {"first", "second"}}
	themes := []model.Theme{{Name: "Youth", Districts: []string{"Kandy"}}}
	store := NewStrategyStore(input, themes)

	input["Kandy"][0] = "mutated"
	themes[0].Districts[0] = "mutated"

	got := store.Strategies("Kandy")
	got[1] = "mutated"
	all := store.All()
	all["Kandy"][0] = "mutated"
	store.Themes()[0].Districts[0] = "mutated"

	require.Equal(t, []string{"first", "second"}, store.Strategies("Kandy"))
	assert.Equal(t, []string{"Kandy"}, store.Themes()[0].Districts)
}
