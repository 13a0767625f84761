package repository

import (
	"context"
	"time"

	"persona-engine/internal/domain/entities"
	repoconstants "persona-engine/internal/domain/interfaces/repository/constants"
)

// SeedPersonas loads a small demo catalog into a repository. Used when the
// engine runs without Mongo (offline/demo mode) and in tests.
func SeedPersonas(ctx context.Context, repo *MemoryRepository[entities.PersonaProfile]) error {
	now := time.Now()

	demo := []entities.PersonaProfile{
		{
			ID:        "persona-controlador-01",
			Name:      "Martha Elena",
			Archetype: entities.ArchetypeControlador,
			CreatedAt: now,
			UpdatedAt: now,
			Active:    true,
			Owner:     "demo",
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
			Location: entities.Location{City: "Puebla", Neighborhood: "La Paz", Region: "Centro"},
			Psychographics: entities.Psychographics{
				Lifestyle:         "organiza la semana alrededor del negocio familiar",
				Values:            []string{"ahorro", "honestidad", "orden"},
				Motivations:       []string{"estabilidad económica", "educación de los hijos"},
				Concerns:          []string{"cobros escondidos", "deudas"},
				PriceSensitivity:  "alta",
				TechAdoption:      "media",
				PreferredChannels: []string{"WhatsApp", "visita en tienda"},
			},
		},
		{
			ID:        "persona-explorador-01",
			Name:      "Diego",
			Archetype: entities.ArchetypeExplorador,
			CreatedAt: now,
			UpdatedAt: now,
			Active:    true,
			Owner:     "demo",
			Demographics: entities.Demographics{
				Age:           28,
				Gender:        "masculino",
				NSE:           entities.NSECPlus,
				MonthlyIncome: 32000,
				Education:     "licenciatura",
				Occupation:    "diseñador freelance",
				FamilyStatus:  "soltero",
				CategorySpend: 900,
			},
			Location: entities.Location{City: "Guadalajara", Region: "Occidente"},
			Psychographics: entities.Psychographics{
				Lifestyle:         "trabaja desde cafés y viaja cuando puede",
				Values:            []string{"libertad", "creatividad"},
				Motivations:       []string{"probar lo nuevo", "compartir hallazgos"},
				Concerns:          []string{"quedarse atrás en tendencias"},
				PriceSensitivity:  "media",
				TechAdoption:      "alta",
				PreferredChannels: []string{"Instagram", "correo"},
			},
		},
		{
			ID:        "persona-tradicionalista-01",
			Name:      "Don Raúl",
			Archetype: entities.ArchetypeTradicionalista,
			CreatedAt: now,
			UpdatedAt: now,
			Active:    true,
			Owner:     "demo",
			Demographics: entities.Demographics{
				Age:           61,
				Gender:        "masculino",
				NSE:           entities.NSECMinus,
				MonthlyIncome: 11000,
				Education:     "secundaria",
				Occupation:    "taxista",
				FamilyStatus:  "casado, hijos independientes",
				CategorySpend: 350,
			},
			Location: entities.Location{City: "Monterrey", Neighborhood: "Colonia Independencia", Region: "Norte"},
			Psychographics: entities.Psychographics{
				Lifestyle:         "rutina fija, domingos de familia",
				Values:            []string{"palabra", "trabajo duro"},
				Motivations:       []string{"tranquilidad", "no deber nada"},
				Concerns:          []string{"que lo engañen", "trámites complicados"},
				PriceSensitivity:  "alta",
				TechAdoption:      "baja",
				PreferredChannels: []string{"teléfono", "en persona"},
			},
		},
	}

	for _, persona := range demo {
		if _, err := repo.Create(ctx, repoconstants.PERSONA_COLLECTION, persona); err != nil {
			return err
		}
	}
	return nil
}
