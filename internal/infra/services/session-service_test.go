package services_test

import (
	"testing"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/infra/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAppendKeepsOrder(t *testing.T) {
	sessions := services.NewSessionService(testLogger(t))
	persona := testPersona(entities.ArchetypeControlador)

	session := sessions.Open(persona, testEvaluation(), testConcept())
	assert.Equal(t, entities.SimAwaitingFirstOpen, session.State)

	first, err := sessions.Append(session.ID, entities.RolePersona, "hola, soy Martha")
	require.NoError(t, err)
	second, err := sessions.Append(session.ID, entities.RoleUser, "¿cuánto cuesta?")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	history, err := sessions.History(session.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entities.RolePersona, history[0].Role)
	assert.Equal(t, "¿cuánto cuesta?", history[1].Content)
}

func TestAppendOnClosedSessionIsRejected(t *testing.T) {
	sessions := services.NewSessionService(testLogger(t))
	session := sessions.Open(testPersona(entities.ArchetypeExplorador), nil, nil)

	_, err := sessions.Append(session.ID, entities.RoleUser, "hola")
	require.NoError(t, err)

	require.NoError(t, sessions.Close(session.ID))

	_, err = sessions.Append(session.ID, entities.RolePersona, "respuesta tardía")
	assert.ErrorIs(t, err, services.ErrSessionClosed)

	history, err := sessions.History(session.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestUnknownSessionReturnsNotFound(t *testing.T) {
	sessions := services.NewSessionService(testLogger(t))

	_, err := sessions.Append("missing", entities.RoleUser, "hola")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)

	_, err = sessions.History("missing")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestExportSnapshotIsSelfContained(t *testing.T) {
	sessions := services.NewSessionService(testLogger(t))
	persona := testPersona(entities.ArchetypeProteccionista)
	session := sessions.Open(persona, testEvaluation(), testConcept())

	_, err := sessions.Append(session.ID, entities.RolePersona, "hola")
	require.NoError(t, err)
	_, err = sessions.Append(session.ID, entities.RoleUser, "¿es seguro?")
	require.NoError(t, err)

	snapshot, err := sessions.ExportSnapshot(session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, snapshot.SessionID)
	assert.Equal(t, persona.ID, snapshot.Persona.ID)
	require.NotNil(t, snapshot.Evaluation)
	assert.Equal(t, 62, snapshot.Evaluation.OverallScore)
	assert.Len(t, snapshot.Turns, 2)
	assert.False(t, snapshot.ExportedAt.IsZero())
}

func TestSetStateTransitions(t *testing.T) {
	sessions := services.NewSessionService(testLogger(t))
	session := sessions.Open(testPersona(entities.ArchetypeOptimizador), nil, nil)

	require.NoError(t, sessions.SetState(session.ID, entities.SimConversing))

	current, err := sessions.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SimConversing, current.State)
}
