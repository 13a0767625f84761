package Iservices

import "persona-engine/internal/domain/entities"

// IPersonaService is the read side of the persona catalog. Writes belong to
// the external persona-management collaborator.
type IPersonaService interface {
	FindByID(id string) (entities.PersonaProfile, error)
	FindAll() ([]entities.PersonaProfile, error)
	Validate(persona entities.PersonaProfile) error
}
