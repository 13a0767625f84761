package Iservices

import "persona-engine/internal/domain/entities"

// ISimulationService is the offline dialogue simulator used when no remote
// generation service is consulted. Both operations always return
// non-empty text, for any archetype and any evaluation context.
type ISimulationService interface {
	OpeningLine(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string
	Reply(persona entities.PersonaProfile, userUtterance string, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string
}
