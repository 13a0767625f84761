package services_test

import (
	"context"
	"testing"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/infra/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.NewLogger(context.Background(), false)
}

func testPersona(archetype entities.Archetype) entities.PersonaProfile {
	return entities.PersonaProfile{
		ID:        "persona-test-01",
		Name:      "Martha Elena",
		Archetype: archetype,
		Active:    true,
		Owner:     "test",
		Demographics: entities.Demographics{
			Age:           47,
			Gender:        "femenino",
			NSE:           entities.NSEC,
			MonthlyIncome: 18500,
			Education:     "preparatoria",
			Occupation:    "comerciante",
			FamilyStatus:  "casada, dos hijos",
			CategorySpend: 500,
		},
		Location: entities.Location{
			City:         "Puebla",
			Neighborhood: "La Paz",
			Region:       "Centro",
		},
		Psychographics: entities.Psychographics{
			Lifestyle:         "organiza la semana alrededor del negocio familiar",
			Values:            []string{"ahorro", "honestidad"},
			Motivations:       []string{"estabilidad económica"},
			Concerns:          []string{"cobros escondidos"},
			PriceSensitivity:  "alta",
			TechAdoption:      "media",
			PreferredChannels: []string{"WhatsApp"},
		},
	}
}

func testEvaluation() *entities.EvaluationContext {
	return &entities.EvaluationContext{
		OverallScore: 62,
		Sentiment:    "neutral",
		KeyInsights:  []string{"el servicio resuelve un problema real"},
		Concerns:     []string{"el pago mensual es alto para mi presupuesto"},
		Suggestions:  []string{"ofrecer un plan básico más barato"},
		Variables: map[string]entities.VariableReaction{
			"precio":         {Reaction: "me pareció caro para lo que ofrece", SpecificFeedback: "compararía con otras opciones"},
			"beneficios":     {Reaction: "los beneficios suenan útiles para la casa"},
			"diferenciacion": {Reaction: "no me quedó claro qué lo hace distinto de lo que ya existe en el mercado"},
		},
	}
}

func testConcept() *entities.ConceptDetails {
	return &entities.ConceptDetails{
		Name:         "Plan Hogar Conectado",
		Category:     "servicios para el hogar",
		Description:  "suscripción mensual de monitoreo del hogar",
		MonthlyPrice: 1200,
	}
}
