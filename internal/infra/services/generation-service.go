package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"persona-engine/internal/domain/dto"
	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/knowledge"
	"persona-engine/internal/infra/logger"
)

const (
	// LowConfidenceSentinel marks replies produced by the fallback path.
	LowConfidenceSentinel = 0.3

	defaultRemoteConfidence = 0.8

	generationTemperature = 0.7
	generationMaxTokens   = 400

	healthProbeTimeout = 5 * time.Second
)

// GenerationService sends compiled directives to the external generation
// endpoint. One attempt per user turn, no retries; every failure mode is
// absorbed by substituting the fallback responder's text.
type GenerationService struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	Host       string
	Token      string
	HealthURL  string
	Fallback   *FallbackService
}

func NewGenerationService(log *logger.Logger, httpClient *http.Client, host string, token string, healthURL string, fallback *FallbackService) *GenerationService {
	return &GenerationService{
		Logger:     log,
		HttpClient: httpClient,
		Host:       host,
		Token:      token,
		HealthURL:  healthURL,
		Fallback:   fallback,
	}
}

// Send posts one generation request. The caller's context carries the
// timeout; this method never sets its own deadline for generation calls so
// tests can simulate timeouts without waiting.
func (gs *GenerationService) Send(ctx context.Context, persona entities.PersonaProfile, directive string, userMessage string, productContext string, history []entities.ConversationTurn) dto.GenerationResult {
	payload := gs.buildRequest(persona, directive, userMessage, productContext, history)

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		gs.Logger.Error(fmt.Sprintf("Failed to marshal generation payload: %s", err.Error()))
		return gs.degraded(persona)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gs.Host+"/generate", bytes.NewBuffer(payloadBytes))
	if err != nil {
		gs.Logger.Error(fmt.Sprintf("Failed to create generation request: %s", err.Error()))
		return gs.degraded(persona)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", gs.Token))

	resp, err := gs.HttpClient.Do(req)
	if err != nil {
		gs.Logger.Error(fmt.Sprintf("Failed to reach generation endpoint: %s", err.Error()))
		return gs.degraded(persona)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		gs.Logger.Error(fmt.Sprintf("Failed to read generation response: %s", err.Error()))
		return gs.degraded(persona)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		gs.Logger.Error(fmt.Sprintf("Generation endpoint returned status %d. Body: %s", resp.StatusCode, string(body)))
		return gs.degraded(persona)
	}

	var generation dto.GenerationResponse
	if err := json.Unmarshal(body, &generation); err != nil {
		gs.Logger.Error(fmt.Sprintf("Failed to unmarshal generation response: %s", err.Error()))
		return gs.degraded(persona)
	}

	text := generation.Message()
	if text == "" {
		gs.Logger.Warn("Generation response carried no text field")
		return gs.degraded(persona)
	}

	confidence := defaultRemoteConfidence
	if generation.ConfidenceScore != nil {
		confidence = *generation.ConfidenceScore
	}

	return dto.GenerationResult{
		Text:            text,
		Insights:        generation.Insights,
		ConfidenceScore: confidence,
	}
}

// HealthCheck probes the liveness endpoint. Anything but a 2xx within 5
// seconds counts as unavailable.
func (gs *GenerationService) HealthCheck(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, gs.HealthURL, nil)
	if err != nil {
		return false
	}

	resp, err := gs.HttpClient.Do(req)
	if err != nil {
		gs.Logger.Warn(fmt.Sprintf("Health probe failed: %s", err.Error()))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

func (gs *GenerationService) buildRequest(persona entities.PersonaProfile, directive string, userMessage string, productContext string, history []entities.ConversationTurn) dto.GenerationRequest {
	conversationHistory := make([]dto.GenerationTurn, 0, len(history))
	for _, turn := range history {
		role := "user"
		if turn.Role == entities.RolePersona {
			role = "assistant"
		}
		conversationHistory = append(conversationHistory, dto.GenerationTurn{Role: role, Content: turn.Content})
	}

	region := persona.Location.Region
	if region == "" {
		region = knowledge.RegionForCity(persona.Location.City)
	}

	return dto.GenerationRequest{
		Text:                userMessage,
		SystemPrompt:        directive,
		ConversationHistory: conversationHistory,
		MetadataFilter: dto.MetadataFilter{
			PersonaID: persona.ID,
			Archetype: string(persona.Archetype),
			Region:    region,
			NSE:       string(persona.Demographics.NSE),
		},
		OutputTypes:     []string{"text"},
		Temperature:     generationTemperature,
		MaxTokens:       generationMaxTokens,
		CreativityLevel: "consistent_natural",
		CulturalContext: "es-MX",
		ProductContext:  productContext,
	}
}

func (gs *GenerationService) degraded(persona entities.PersonaProfile) dto.GenerationResult {
	return dto.GenerationResult{
		Text:            gs.Fallback.Fallback(persona),
		ConfidenceScore: LowConfidenceSentinel,
		Degraded:        true,
	}
}
