package services

import (
	"fmt"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/knowledge"
	"persona-engine/internal/util"
)

// FallbackService produces the deterministic in-character apology used when
// the generation endpoint is unavailable. It never fails.
type FallbackService struct{}

func NewFallbackService() *FallbackService {
	return &FallbackService{}
}

func (fs *FallbackService) Fallback(persona entities.PersonaProfile) string {
	region := persona.Location.Region
	if region == "" {
		region = knowledge.RegionForCity(persona.Location.City)
	}
	expression := util.FirstOr(knowledge.ExpressionsForRegion(region), "oye")

	return fmt.Sprintf(
		"%s Perdón, soy %s, de %s. Ando medio desconectado en este momento, "+
			"entre el trabajo de %s y las cuentas de la casa (ya sabes, nivel %s uno no se da abasto). "+
			"¿Me repites tu pregunta en un momento? Con gusto te contesto.",
		expression,
		persona.Name,
		persona.Location.City,
		persona.Demographics.Occupation,
		persona.Demographics.NSE,
	)
}
