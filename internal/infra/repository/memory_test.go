package repository_test

import (
	"context"
	"testing"

	"persona-engine/internal/domain/entities"
	repoconstants "persona-engine/internal/domain/interfaces/repository/constants"
	"persona-engine/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryCrud(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository[entities.PersonaProfile]()

	persona := entities.PersonaProfile{ID: "p-1", Name: "Martha", Archetype: entities.ArchetypeControlador}
	_, err := repo.Create(ctx, repoconstants.PERSONA_COLLECTION, persona)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, repoconstants.PERSONA_COLLECTION, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Martha", found.Name)

	persona.Name = "Martha Elena"
	_, err = repo.Update(ctx, repoconstants.PERSONA_COLLECTION, "p-1", persona)
	require.NoError(t, err)

	found, err = repo.FindByID(ctx, repoconstants.PERSONA_COLLECTION, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Martha Elena", found.Name)

	require.NoError(t, repo.Delete(ctx, repoconstants.PERSONA_COLLECTION, "p-1"))
	_, err = repo.FindByID(ctx, repoconstants.PERSONA_COLLECTION, "p-1")
	assert.Error(t, err)
}

func TestMemoryRepositoryCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository[entities.PersonaProfile]()

	_, err := repo.Create(ctx, "A", entities.PersonaProfile{ID: "p-1"})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx, "B")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSeedPersonasLoadsDemoCatalog(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository[entities.PersonaProfile]()

	require.NoError(t, repository.SeedPersonas(ctx, repo))

	all, err := repo.FindAll(ctx, repoconstants.PERSONA_COLLECTION)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	martha, err := repo.FindByID(ctx, repoconstants.PERSONA_COLLECTION, "persona-controlador-01")
	require.NoError(t, err)
	assert.Equal(t, entities.ArchetypeControlador, martha.Archetype)
	assert.Equal(t, "Puebla", martha.Location.City)
}
