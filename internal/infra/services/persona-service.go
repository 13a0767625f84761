package services

import (
	"context"
	"fmt"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/interfaces/repository"
	repoconstants "persona-engine/internal/domain/interfaces/repository/constants"
	"persona-engine/internal/domain/knowledge"
	"persona-engine/internal/infra/logger"
)

// PersonaService is the read side of the persona catalog. Profiles are
// created and edited by the external management collaborator; this service
// only fetches and validates them.
type PersonaService struct {
	PersonaRepository repository.Repository[entities.PersonaProfile]
	Ctx               context.Context
	Logger            *logger.Logger
}

func NewPersonaService(personaRepository repository.Repository[entities.PersonaProfile], ctx context.Context, log *logger.Logger) *PersonaService {
	return &PersonaService{
		PersonaRepository: personaRepository,
		Ctx:               ctx,
		Logger:            log,
	}
}

func (ps *PersonaService) FindByID(id string) (entities.PersonaProfile, error) {
	persona, err := ps.PersonaRepository.FindByID(ps.Ctx, repoconstants.PERSONA_COLLECTION, id)
	if err != nil {
		ps.Logger.Error(fmt.Sprintf("Failed to find persona '%s': %v", id, err))
		return entities.PersonaProfile{}, err
	}

	// A malformed record is a catalog defect, not a conversation stopper:
	// unknown archetypes degrade to generic templates downstream.
	if err := ps.Validate(persona); err != nil {
		ps.Logger.Warn(fmt.Sprintf("Persona '%s' failed validation: %v", id, err))
	}

	return persona, nil
}

func (ps *PersonaService) FindAll() ([]entities.PersonaProfile, error) {
	personas, err := ps.PersonaRepository.FindAll(ps.Ctx, repoconstants.PERSONA_COLLECTION)
	if err != nil {
		ps.Logger.Error(fmt.Sprintf("Failed to list personas: %v", err))
		return nil, err
	}
	return personas, nil
}

// Validate enforces the catalog invariants: archetype in the closed set,
// non-negative money fields, and region consistent with the gazetteer.
func (ps *PersonaService) Validate(persona entities.PersonaProfile) error {
	if !persona.Archetype.Known() {
		return fmt.Errorf("unknown archetype %q", persona.Archetype)
	}
	if persona.Demographics.MonthlyIncome < 0 {
		return fmt.Errorf("monthly income must be non-negative")
	}
	if persona.Demographics.CategorySpend < 0 {
		return fmt.Errorf("category spend must be non-negative")
	}
	if persona.Location.Region != "" && knowledge.KnownCity(persona.Location.City) {
		if expected := knowledge.RegionForCity(persona.Location.City); persona.Location.Region != expected {
			return fmt.Errorf("region %q does not match city %q (expected %q)",
				persona.Location.Region, persona.Location.City, expected)
		}
	}
	return nil
}
