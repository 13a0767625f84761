package entities

import "time"

// Archetype is one of the six fixed consumer-behavior segments used to
// condition a persona's tone and priorities. The set is closed: adding a
// segment is a deliberate code change, not a data change.
type Archetype string

const (
	ArchetypeControlador     Archetype = "CONTROLADOR"
	ArchetypeProteccionista  Archetype = "PROTECCIONISTA"
	ArchetypeOptimizador     Archetype = "OPTIMIZADOR"
	ArchetypeAspiracional    Archetype = "ASPIRACIONAL"
	ArchetypeTradicionalista Archetype = "TRADICIONALISTA"
	ArchetypeExplorador      Archetype = "EXPLORADOR"
)

// AllArchetypes lists the closed set in display order.
var AllArchetypes = []Archetype{
	ArchetypeControlador,
	ArchetypeProteccionista,
	ArchetypeOptimizador,
	ArchetypeAspiracional,
	ArchetypeTradicionalista,
	ArchetypeExplorador,
}

func (a Archetype) Known() bool {
	for _, known := range AllArchetypes {
		if a == known {
			return true
		}
	}
	return false
}

// NSETier is the ordered socioeconomic scale (AMAI-style, six levels).
type NSETier string

const (
	NSEAB     NSETier = "A/B"
	NSECPlus  NSETier = "C+"
	NSEC      NSETier = "C"
	NSECMinus NSETier = "C-"
	NSEDPlus  NSETier = "D+"
	NSEDE     NSETier = "D/E"
)

type Demographics struct {
	Age           int     `json:"age" bson:"age"`
	Gender        string  `json:"gender" bson:"gender"`
	NSE           NSETier `json:"nse" bson:"nse"`
	MonthlyIncome float64 `json:"monthly_income" bson:"monthly_income"`
	Education     string  `json:"education" bson:"education"`
	Occupation    string  `json:"occupation" bson:"occupation"`
	FamilyStatus  string  `json:"family_status" bson:"family_status"`
	// CategorySpend is what the persona currently spends per month on the
	// product category under study. Baseline for price comparisons.
	CategorySpend float64 `json:"category_spend" bson:"category_spend"`
}

type Location struct {
	City         string `json:"city" bson:"city"`
	Neighborhood string `json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`
	Region       string `json:"region" bson:"region"`
}

type Psychographics struct {
	Lifestyle         string   `json:"lifestyle" bson:"lifestyle"`
	Values            []string `json:"values" bson:"values"`
	Motivations       []string `json:"motivations" bson:"motivations"`
	Concerns          []string `json:"concerns" bson:"concerns"`
	PriceSensitivity  string   `json:"price_sensitivity" bson:"price_sensitivity"`
	TechAdoption      string   `json:"tech_adoption" bson:"tech_adoption"`
	PreferredChannels []string `json:"preferred_channels" bson:"preferred_channels"`
}

// PersonaProfile is the canonical record for one synthetic consumer.
// The dialogue engine only reads profiles; the persona-management
// collaborator owns every write.
type PersonaProfile struct {
	ID             string         `json:"id" bson:"id"`
	Name           string         `json:"name" bson:"name"`
	Archetype      Archetype      `json:"archetype" bson:"archetype"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
	Active         bool           `json:"active" bson:"active"`
	Owner          string         `json:"owner" bson:"owner"`
	Demographics   Demographics   `json:"demographics" bson:"demographics"`
	Location       Location       `json:"location" bson:"location"`
	Psychographics Psychographics `json:"psychographics" bson:"psychographics"`
}

func (p PersonaProfile) GetID() string {
	return p.ID
}
