package Iservices

import (
	"context"

	"persona-engine/internal/domain/dto"
	"persona-engine/internal/domain/entities"
)

// IDialogueService orchestrates one user turn end to end: persona lookup,
// directive compilation, remote generation or offline simulation, and
// session bookkeeping.
type IDialogueService interface {
	Chat(ctx context.Context, personaID string, req dto.ChatRequest) (dto.ChatResponse, error)
	Simulate(ctx context.Context, personaID string, req dto.SimulateRequest) (dto.ChatResponse, error)
	Export(ctx context.Context, sessionID string) (entities.SessionSnapshot, error)
}
