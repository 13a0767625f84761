package repository_test

import (
	"context"
	"testing"
	"time"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/infra/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArchive(t *testing.T, ttl time.Duration) (*repository.SessionArchive, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return repository.NewSessionArchive(client, "", ttl), mr
}

func TestSessionArchiveRoundTrip(t *testing.T) {
	archive, _ := newArchive(t, 0)
	ctx := context.Background()

	snapshot := entities.SessionSnapshot{
		SessionID: "s-1",
		Persona:   entities.PersonaProfile{ID: "p-1", Name: "Martha Elena", Archetype: entities.ArchetypeControlador},
		Turns: []entities.ConversationTurn{
			{ID: "t-1", Role: entities.RolePersona, Content: "hola"},
			{ID: "t-2", Role: entities.RoleUser, Content: "¿cuánto cuesta?"},
		},
		ExportedAt: time.Now().UTC(),
	}

	require.NoError(t, archive.Save(ctx, snapshot))

	loaded, err := archive.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, snapshot.SessionID, loaded.SessionID)
	assert.Equal(t, snapshot.Persona.Name, loaded.Persona.Name)
	require.Len(t, loaded.Turns, 2)
	assert.Equal(t, "¿cuánto cuesta?", loaded.Turns[1].Content)
}

func TestSessionArchiveMissingSnapshot(t *testing.T) {
	archive, _ := newArchive(t, 0)

	_, err := archive.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSessionArchiveHonorsTTL(t *testing.T) {
	archive, mr := newArchive(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, entities.SessionSnapshot{SessionID: "s-2"}))

	mr.FastForward(2 * time.Minute)

	_, err := archive.Load(ctx, "s-2")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}
