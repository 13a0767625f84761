package knowledge_test

import (
	"testing"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryArchetypeHasDescriptionAndFollowUps(t *testing.T) {
	for _, archetype := range entities.AllArchetypes {
		assert.NotEmpty(t, knowledge.Description(archetype), "description for %s", archetype)
		assert.GreaterOrEqual(t, len(knowledge.FollowUps(archetype)), 4, "follow-ups for %s", archetype)
	}
}

func TestUnknownArchetypeFallsBackToGeneric(t *testing.T) {
	unknown := entities.Archetype("DESCONOCIDO")

	description := knowledge.Description(unknown)
	assert.NotEmpty(t, description)
	assert.NotEqual(t, knowledge.Description(entities.ArchetypeControlador), description)

	followUps := knowledge.FollowUps(unknown)
	require.NotEmpty(t, followUps)
	assert.NotEqual(t, knowledge.FollowUps(entities.ArchetypeControlador), followUps)
}

func TestRegionForCity(t *testing.T) {
	assert.Equal(t, "Norte", knowledge.RegionForCity("Monterrey"))
	assert.Equal(t, "Occidente", knowledge.RegionForCity("Guadalajara"))
	assert.Equal(t, "Bajío", knowledge.RegionForCity("León"))

	// Unknown cities resolve to the default region instead of failing.
	assert.Equal(t, "Centro", knowledge.RegionForCity("Macondo"))
	assert.False(t, knowledge.KnownCity("Macondo"))
	assert.True(t, knowledge.KnownCity("Puebla"))
}

func TestExpressionsForRegionNeverEmpty(t *testing.T) {
	for _, region := range []string{"Centro", "Occidente", "Bajío", "Norte", "Noroeste", "Sureste", "Golfo"} {
		assert.NotEmpty(t, knowledge.ExpressionsForRegion(region), "expressions for %s", region)
	}

	assert.Equal(t, knowledge.ExpressionsForRegion("Centro"), knowledge.ExpressionsForRegion("Atlántida"))
}

func TestEconomicContextCoversAllTiers(t *testing.T) {
	tiers := []entities.NSETier{
		entities.NSEAB, entities.NSECPlus, entities.NSEC,
		entities.NSECMinus, entities.NSEDPlus, entities.NSEDE,
	}
	seen := make(map[string]bool)
	for _, tier := range tiers {
		sentence := knowledge.EconomicContext(tier)
		require.NotEmpty(t, sentence, "economic context for %s", tier)
		seen[sentence] = true
	}
	assert.Len(t, seen, len(tiers), "each tier should read differently")

	assert.NotEmpty(t, knowledge.EconomicContext(entities.NSETier("Z")))
}
