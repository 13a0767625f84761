package services

import (
	"fmt"
	"strings"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/knowledge"
	"persona-engine/internal/util"
)

const genericProductContext = "un producto de consumo para el hogar"

const maxIdiomsInDirective = 3

// PromptCompilerService turns a persona profile plus optional product context
// into the system directive for the generation endpoint. Pure and
// deterministic: same profile and context always compile to the same bytes.
type PromptCompilerService struct{}

func NewPromptCompilerService() *PromptCompilerService {
	return &PromptCompilerService{}
}

func (pc *PromptCompilerService) Compile(persona entities.PersonaProfile, productContext string) string {
	if strings.TrimSpace(productContext) == "" {
		productContext = genericProductContext
	}

	region := persona.Location.Region
	if region == "" {
		region = knowledge.RegionForCity(persona.Location.City)
	}

	expressions := knowledge.ExpressionsForRegion(region)
	if len(expressions) > maxIdiomsInDirective {
		expressions = expressions[:maxIdiomsInDirective]
	}

	neighborhood := persona.Location.Neighborhood
	if neighborhood == "" {
		neighborhood = "el centro de la ciudad"
	}

	var b strings.Builder

	// 1. Identity and demographics
	b.WriteString(fmt.Sprintf(
		"Eres %s, una persona de %d años de edad. Género: %s. Ocupación: %s. Escolaridad: %s. Situación familiar: %s. "+
			"Ingreso mensual del hogar: $%.0f MXN. Gasto mensual actual en la categoría: $%.0f MXN.\n\n",
		persona.Name,
		persona.Demographics.Age,
		persona.Demographics.Gender,
		persona.Demographics.Occupation,
		persona.Demographics.Education,
		persona.Demographics.FamilyStatus,
		persona.Demographics.MonthlyIncome,
		persona.Demographics.CategorySpend,
	))

	// 2. Location, region and regional expressions
	b.WriteString(fmt.Sprintf(
		"Vives en %s, en %s (región %s). Expresiones típicas de tu región que puedes usar: %s.\n\n",
		persona.Location.City,
		neighborhood,
		region,
		strings.Join(expressions, ", "),
	))

	// 3. Economic context by socioeconomic tier
	b.WriteString(fmt.Sprintf("Contexto económico (NSE %s): %s\n\n",
		persona.Demographics.NSE, knowledge.EconomicContext(persona.Demographics.NSE)))

	// 4. Archetype description
	b.WriteString(fmt.Sprintf("Perfil de consumo (%s): %s\n\n",
		persona.Archetype, knowledge.Description(persona.Archetype)))

	// 5. Psychographic summary
	b.WriteString(fmt.Sprintf(
		"Estilo de vida: %s. Valores: %s. Preocupaciones: %s. Motivaciones: %s. Canales preferidos: %s. "+
			"Sensibilidad al precio: %s. Adopción de tecnología: %s.\n\n",
		persona.Psychographics.Lifestyle,
		util.JoinOr(persona.Psychographics.Values, ", ", util.NoDataPlaceholder),
		util.JoinOr(persona.Psychographics.Concerns, ", ", util.NoDataPlaceholder),
		util.JoinOr(persona.Psychographics.Motivations, ", ", util.NoDataPlaceholder),
		util.JoinOr(persona.Psychographics.PreferredChannels, ", ", util.NoDataPlaceholder),
		persona.Psychographics.PriceSensitivity,
		persona.Psychographics.TechAdoption,
	))

	// 6. Behavioral instructions
	b.WriteString("Instrucciones de comportamiento:\n")
	b.WriteString("- Responde siempre en primera persona, como esta persona y nadie más.\n")
	b.WriteString(fmt.Sprintf("- Usa como máximo %d de las expresiones regionales indicadas, solo cuando suenen naturales.\n", maxIdiomsInDirective))
	b.WriteString(fmt.Sprintf("- Habla desde tu experiencia vivida con %s.\n", productContext))
	b.WriteString("- Si no tienes experiencia personal con algo, dilo con honestidad en lugar de inventar.\n")
	b.WriteString(fmt.Sprintf("- Refleja en tus respuestas la realidad económica de un hogar NSE %s.\n", persona.Demographics.NSE))
	b.WriteString(fmt.Sprintf("- Mantén en todo momento las prioridades y el tono del perfil %s.\n", persona.Archetype))
	b.WriteString(fmt.Sprintf("- Usa el registro de habla propio de alguien de %d años que trabaja como %s.\n",
		persona.Demographics.Age, persona.Demographics.Occupation))

	return b.String()
}
