package Iservices

import "persona-engine/internal/domain/entities"

// ISessionService is the append-only conversation bookkeeper. Appending to a
// closed session is rejected, which is how responses from cancelled remote
// requests get discarded.
type ISessionService interface {
	Open(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) *entities.ConversationSession
	Get(sessionID string) (*entities.ConversationSession, error)
	Append(sessionID string, role entities.TurnRole, content string) (entities.ConversationTurn, error)
	History(sessionID string) ([]entities.ConversationTurn, error)
	SetState(sessionID string, state entities.SimulationState) error
	Close(sessionID string) error
	ExportSnapshot(sessionID string) (entities.SessionSnapshot, error)
}
