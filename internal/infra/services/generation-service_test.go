package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"persona-engine/internal/domain/dto"
	"persona-engine/internal/domain/entities"
	"persona-engine/internal/infra/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerationService(t *testing.T, host string, healthURL string) *services.GenerationService {
	t.Helper()
	return services.NewGenerationService(
		testLogger(t),
		&http.Client{},
		host,
		"test-token",
		healthURL,
		services.NewFallbackService(),
	)
}

func TestSendNon2xxReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	persona := testPersona(entities.ArchetypeControlador)
	gs := newGenerationService(t, server.URL, server.URL)

	result := gs.Send(context.Background(), persona, "directiva", "hola", "", nil)

	expected := services.NewFallbackService().Fallback(persona)
	assert.Equal(t, expected, result.Text)
	assert.Equal(t, services.LowConfidenceSentinel, result.ConfidenceScore)
	assert.True(t, result.Degraded)
}

func TestSendMalformedPayloadReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	persona := testPersona(entities.ArchetypeOptimizador)
	gs := newGenerationService(t, server.URL, server.URL)

	result := gs.Send(context.Background(), persona, "directiva", "hola", "", nil)

	assert.Equal(t, services.LowConfidenceSentinel, result.ConfidenceScore)
	assert.NotEmpty(t, result.Text)
	assert.True(t, result.Degraded)
}

func TestSendSuccessParsesAnswerAndAttachesHints(t *testing.T) {
	persona := testPersona(entities.ArchetypeControlador)

	var captured dto.GenerationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"answer":           "Sí me interesa, pero el precio me preocupa.",
			"confidence_score": 0.92,
		})
	}))
	defer server.Close()

	gs := newGenerationService(t, server.URL, server.URL)
	history := []entities.ConversationTurn{
		{Role: entities.RoleUser, Content: "hola"},
		{Role: entities.RolePersona, Content: "¿qué onda?"},
	}

	result := gs.Send(context.Background(), persona, "directiva del sistema", "¿lo comprarías?", "seguros", history)

	assert.Equal(t, "Sí me interesa, pero el precio me preocupa.", result.Text)
	assert.InDelta(t, 0.92, result.ConfidenceScore, 0.001)
	assert.False(t, result.Degraded)

	assert.Equal(t, "¿lo comprarías?", captured.Text)
	assert.Equal(t, "directiva del sistema", captured.SystemPrompt)
	assert.Equal(t, []string{"text"}, captured.OutputTypes)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
	assert.Equal(t, 400, captured.MaxTokens)
	assert.Equal(t, persona.ID, captured.MetadataFilter.PersonaID)
	assert.Equal(t, "CONTROLADOR", captured.MetadataFilter.Archetype)
	assert.Equal(t, "Centro", captured.MetadataFilter.Region)
	assert.Equal(t, "C", captured.MetadataFilter.NSE)
	require.Len(t, captured.ConversationHistory, 2)
	assert.Equal(t, "assistant", captured.ConversationHistory[1].Role)
}

func TestSendPrefersAnswerOverOtherTextFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"response": "texto en response"})
	}))
	defer server.Close()

	gs := newGenerationService(t, server.URL, server.URL)
	result := gs.Send(context.Background(), testPersona(entities.ArchetypeExplorador), "d", "hola", "", nil)

	assert.Equal(t, "texto en response", result.Text)
}

func TestSendHonorsCallerTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]any{"answer": "tarde"})
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	gs := newGenerationService(t, server.URL, server.URL)
	result := gs.Send(ctx, testPersona(entities.ArchetypeControlador), "d", "hola", "", nil)

	assert.Equal(t, services.LowConfidenceSentinel, result.ConfidenceScore)
	assert.True(t, result.Degraded)
}

func TestHealthCheck(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	gs := newGenerationService(t, healthy.URL, healthy.URL)
	assert.True(t, gs.HealthCheck(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	gs = newGenerationService(t, down.URL, down.URL)
	assert.False(t, gs.HealthCheck(context.Background()))
	down.Close()

	gs = newGenerationService(t, down.URL, down.URL)
	assert.False(t, gs.HealthCheck(context.Background()))
}
