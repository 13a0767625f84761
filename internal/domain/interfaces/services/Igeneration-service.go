package Iservices

import (
	"context"

	"persona-engine/internal/domain/dto"
	"persona-engine/internal/domain/entities"
)

// IGenerationService talks to the external text-generation endpoint. Send
// never returns a transport error to the caller: any failure is replaced by
// the in-character fallback with a degraded confidence score.
type IGenerationService interface {
	Send(ctx context.Context, persona entities.PersonaProfile, directive string, userMessage string, productContext string, history []entities.ConversationTurn) dto.GenerationResult
	HealthCheck(ctx context.Context) bool
}
