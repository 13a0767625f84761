package services

import (
	"fmt"
	"strings"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/knowledge"
	"persona-engine/internal/infra/logger"
	"persona-engine/internal/util"
)

const reactionExcerptLimit = 100

// topicTrigger binds a topic to the substrings that activate it. Tables are
// slices, not maps: matching walks them in declaration order and the first
// hit wins, which is also the tie-break when keyword sets ever overlap.
type topicTrigger struct {
	topic    string
	keywords []string
}

var (
	priceTrigger     = topicTrigger{topic: "precio", keywords: []string{"precio", "cuesta", "cuánto", "cuanto", "costo", "pago", "pagar", "mensualidad"}}
	benefitsTrigger  = topicTrigger{topic: "beneficios", keywords: []string{"beneficio", "ventaja", "sirve", "incluye", "ofrece"}}
	guaranteeTrigger = topicTrigger{topic: "garantia", keywords: []string{"garantía", "garantia", "contrato", "compromiso", "cancelar", "plazo"}}
	trustTrigger     = topicTrigger{topic: "confianza", keywords: []string{"confianza", "confiar", "quién está detrás", "quien esta detras", "empresa", "respaldo"}}
	familyTrigger    = topicTrigger{topic: "familia", keywords: []string{"familia", "hijos", "seguro", "seguridad", "riesgo"}}
	techTrigger      = topicTrigger{topic: "tecnologia", keywords: []string{"app", "aplicación", "aplicacion", "tecnología", "tecnologia", "digital", "celular"}}
	statusTrigger    = topicTrigger{topic: "estatus", keywords: []string{"marca", "imagen", "exclusivo", "premium", "moda"}}
	habitTrigger     = topicTrigger{topic: "costumbre", keywords: []string{"cambiar", "cambio", "costumbre", "de siempre", "toda la vida"}}
	noveltyTrigger   = topicTrigger{topic: "novedad", keywords: []string{"nuevo", "novedad", "diferente", "probar", "innovador"}}
)

// archetypeTriggers holds the per-archetype topic tables in priority order.
var archetypeTriggers = map[entities.Archetype][]topicTrigger{
	entities.ArchetypeControlador:     {priceTrigger, benefitsTrigger, guaranteeTrigger},
	entities.ArchetypeProteccionista:  {familyTrigger, guaranteeTrigger, priceTrigger, benefitsTrigger},
	entities.ArchetypeOptimizador:     {techTrigger, benefitsTrigger, priceTrigger, guaranteeTrigger},
	entities.ArchetypeAspiracional:    {statusTrigger, benefitsTrigger, priceTrigger},
	entities.ArchetypeTradicionalista: {habitTrigger, trustTrigger, priceTrigger, guaranteeTrigger},
	entities.ArchetypeExplorador:      {noveltyTrigger, techTrigger, priceTrigger, benefitsTrigger},
}

// SimulationService simulates in-character replies without consulting any
// remote model. Seeded entirely by the evaluation context and the concept
// under test; always returns non-empty text.
type SimulationService struct {
	Logger *logger.Logger
}

func NewSimulationService(log *logger.Logger) *SimulationService {
	return &SimulationService{Logger: log}
}

// OpeningLine produces the first persona turn of a simulated session.
func (ss *SimulationService) OpeningLine(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string {
	eval, concept = normalizeContext(eval, concept)

	greeting := util.FirstOr(knowledge.ExpressionsForRegion(regionOf(persona)), "hola")
	conceptName := conceptNameOr(concept, "el concepto que me enseñaron")
	priceClause := ""
	if concept.MonthlyPrice > 0 {
		priceClause = fmt.Sprintf(" de $%.0f al mes", concept.MonthlyPrice)
	}

	switch persona.Archetype {
	case entities.ArchetypeControlador:
		return fmt.Sprintf("%s Soy %s, %s, de %s. Ya revisé %s%s con calculadora en mano y le puse %d de 100. "+
			"Lo que más me frena es esto: %s. Pregúntame lo que quieras, pero con números claros.",
			greeting, persona.Name, persona.Demographics.Occupation, persona.Location.City,
			conceptName, priceClause, eval.OverallScore,
			util.FirstOr(eval.Concerns, util.NoDataPlaceholder))

	case entities.ArchetypeProteccionista:
		return fmt.Sprintf("%s Me llamo %s y trabajo como %s aquí en %s. Vi %s%s pensando en mi familia, "+
			"y así quedó mi calificación: %d de 100. Te confieso mi pendiente principal: %s.",
			greeting, persona.Name, persona.Demographics.Occupation, persona.Location.City,
			conceptName, priceClause, eval.OverallScore,
			util.FirstOr(eval.Concerns, util.NoDataPlaceholder))

	case entities.ArchetypeOptimizador:
		return fmt.Sprintf("%s Soy %s, %s en %s. Me puse a comparar %s%s contra lo que ya uso y llegué a esto: %s. "+
			"Mi calificación final fue %d de 100. ¿Qué quieres que te detalle?",
			greeting, persona.Name, persona.Demographics.Occupation, persona.Location.City,
			conceptName, priceClause,
			util.FirstOr(eval.KeyInsights, util.NoDataPlaceholder), eval.OverallScore)

	case entities.ArchetypeAspiracional:
		return fmt.Sprintf("%s Soy %s, %s, de %s. Cuando vi %s%s lo primero que pensé fue en cómo se vería en mi vida. "+
			"Sobre lo que lo hace distinto, esto fue lo que sentí: %s. Mi calificación: %d de 100.",
			greeting, persona.Name, persona.Demographics.Occupation, persona.Location.City,
			conceptName, priceClause,
			util.Truncate(ss.variableReactionOr(eval, "diferenciacion"), reactionExcerptLimit), eval.OverallScore)

	case entities.ArchetypeTradicionalista:
		return fmt.Sprintf("%s Soy %s, %s de toda la vida aquí en %s. A mí esto de %s%s me mueve el piso, "+
			"para qué te digo que no: %s. Aun así le puse %d de 100. Tú dirás qué me quieres preguntar.",
			greeting, persona.Name, persona.Demographics.Occupation, persona.Location.City,
			conceptName, priceClause,
			util.FirstOr(eval.Concerns, util.NoDataPlaceholder), eval.OverallScore)

	case entities.ArchetypeExplorador:
		return fmt.Sprintf("%s ¡Soy %s, %s en %s! Me emocionó probar %s%s, me encanta ser de los primeros. "+
			"Lo que más me llamó la atención: %s. Le puse %d de 100. ¡Cuéntame más!",
			greeting, persona.Name, persona.Demographics.Occupation, persona.Location.City,
			conceptName, priceClause,
			util.FirstOr(eval.KeyInsights, util.NoDataPlaceholder), eval.OverallScore)
	}

	// Unknown archetype in the catalog: generic opening, never an error.
	return fmt.Sprintf("Hola, soy %s, de %s. Ya revisé %s y le puse %d de 100. ¿Qué te gustaría saber?",
		persona.Name, persona.Location.City, conceptName, eval.OverallScore)
}

// Reply answers one user utterance by keyword-matching it against the
// archetype's topic table. No match falls through to the generic reply.
func (ss *SimulationService) Reply(persona entities.PersonaProfile, userUtterance string, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string {
	eval, concept = normalizeContext(eval, concept)
	lowered := strings.ToLower(userUtterance)

	triggers, known := archetypeTriggers[persona.Archetype]
	if !known {
		return ss.genericReply(persona, eval)
	}

	for _, trigger := range triggers {
		if matchesAny(lowered, trigger.keywords) {
			return ss.topicReply(trigger.topic, persona, eval, concept)
		}
	}

	return ss.genericReply(persona, eval)
}

func matchesAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func (ss *SimulationService) topicReply(topic string, persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string {
	switch topic {
	case "precio":
		return ss.priceReply(persona, eval, concept)
	case "beneficios":
		return ss.benefitsReply(persona, eval, concept)
	case "garantia":
		return ss.guaranteeReply(persona, eval)
	case "confianza":
		return ss.trustReply(persona, eval)
	case "familia":
		return ss.familyReply(persona, eval)
	case "tecnologia":
		return ss.techReply(persona, eval)
	case "estatus":
		return ss.statusReply(persona, eval, concept)
	case "costumbre":
		return ss.habitReply(persona, eval)
	case "novedad":
		return ss.noveltyReply(persona, eval, concept)
	}
	return ss.genericReply(persona, eval)
}

var priceLeads = map[entities.Archetype]string{
	entities.ArchetypeControlador:     "Mira, del precio no se me va una: lo primero que hice fue sacar cuentas.",
	entities.ArchetypeProteccionista:  "El precio lo veo siempre junto con el resto de los gastos de la casa.",
	entities.ArchetypeOptimizador:     "Del precio te hablo con la comparación que ya hice en mi celular.",
	entities.ArchetypeAspiracional:    "El precio no me espanta si lo que recibo está a la altura.",
	entities.ArchetypeTradicionalista: "A mí los pagos nuevos me cuestan trabajo, te lo digo de entrada.",
	entities.ArchetypeExplorador:      "Por probar algo nuevo no me duele pagar, pero tampoco soy de tirar el dinero.",
}

func (ss *SimulationService) priceReply(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string {
	lead, ok := priceLeads[persona.Archetype]
	if !ok {
		lead = "Del precio te puedo platicar lo que pensé cuando lo vi."
	}

	baseline := persona.Demographics.CategorySpend
	price := concept.MonthlyPrice

	var comparison string
	if price > 0 && baseline > 0 {
		comparison = fmt.Sprintf("Hoy gasto como $%.0f al mes en esto, y ustedes hablan de $%.0f: eso es un aumento de %d%% para mi bolsillo.",
			baseline, price, util.PercentIncrease(price, baseline))
	} else if price > 0 {
		comparison = fmt.Sprintf("Me hablan de $%.0f al mes, y eso en mi presupuesto sí se nota.", price)
	} else {
		comparison = "Todavía nadie me dice un número claro de cuánto costaría al mes, y sin eso no puedo opinar bien."
	}

	reaction := fmt.Sprintf("Cuando lo evalué, sobre el precio pensé: %s.", ss.variableReactionOr(eval, "precio"))

	return joinSentences(lead, comparison, reaction, ss.followUpBlock(persona.Archetype, 2))
}

func (ss *SimulationService) benefitsReply(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string {
	insight := util.FirstOr(eval.KeyInsights, util.NoDataPlaceholder)
	reaction := ss.variableReactionOr(eval, "beneficios")
	return joinSentences(
		fmt.Sprintf("De los beneficios de %s te digo lo que me quedó: %s.", conceptNameOr(concept, "la propuesta"), insight),
		fmt.Sprintf("Sobre lo que ofrece, mi reacción fue: %s.", reaction),
		ss.followUpBlock(persona.Archetype, 2),
	)
}

func (ss *SimulationService) guaranteeReply(persona entities.PersonaProfile, eval *entities.EvaluationContext) string {
	return joinSentences(
		"Eso de garantías y contratos es justo donde más me fijo antes de firmar nada.",
		fmt.Sprintf("Mi pendiente principal sigue siendo: %s.", util.FirstOr(eval.Concerns, util.NoDataPlaceholder)),
		fmt.Sprintf("Y sobre la garantía en concreto: %s.", ss.variableReactionOr(eval, "garantia")),
		ss.followUpBlock(persona.Archetype, 3),
	)
}

func (ss *SimulationService) trustReply(persona entities.PersonaProfile, eval *entities.EvaluationContext) string {
	return joinSentences(
		"Antes de darle mi dinero a alguien necesito saber quién está detrás y cuánto llevan en esto.",
		fmt.Sprintf("Cuando lo evalué me quedé con esta duda: %s.", util.FirstOr(eval.Concerns, util.NoDataPlaceholder)),
		ss.followUpBlock(persona.Archetype, 2),
	)
}

func (ss *SimulationService) familyReply(persona entities.PersonaProfile, eval *entities.EvaluationContext) string {
	return joinSentences(
		fmt.Sprintf("Todo lo que entra a mi casa pasa primero por el filtro de mi familia (%s).", persona.Demographics.FamilyStatus),
		fmt.Sprintf("Lo que más me preocupa es: %s.", util.FirstOr(eval.Concerns, util.NoDataPlaceholder)),
		fmt.Sprintf("De los beneficios para los míos, pensé: %s.", ss.variableReactionOr(eval, "beneficios")),
		ss.followUpBlock(persona.Archetype, 2),
	)
}

func (ss *SimulationService) techReply(persona entities.PersonaProfile, eval *entities.EvaluationContext) string {
	return joinSentences(
		fmt.Sprintf("Yo todo lo manejo desde el celular, así que eso lo valoro mucho (me considero %s con la tecnología).",
			persona.Psychographics.TechAdoption),
		fmt.Sprintf("Lo que concluí al evaluarlo: %s.", util.FirstOr(eval.KeyInsights, util.NoDataPlaceholder)),
		ss.followUpBlock(persona.Archetype, 2),
	)
}

func (ss *SimulationService) statusReply(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string {
	return joinSentences(
		fmt.Sprintf("Para mí también cuenta lo que %s dice de quien lo usa.", conceptNameOr(concept, "un producto así")),
		fmt.Sprintf("Sobre lo que lo hace diferente, sentí esto: %s.",
			util.Truncate(ss.variableReactionOr(eval, "diferenciacion"), reactionExcerptLimit)),
		ss.followUpBlock(persona.Archetype, 2),
	)
}

func (ss *SimulationService) habitReply(persona entities.PersonaProfile, eval *entities.EvaluationContext) string {
	return joinSentences(
		"Cambiar lo que me ha funcionado años no es algo que haga a la ligera.",
		fmt.Sprintf("Por eso mi reserva principal es: %s.", util.FirstOr(eval.Concerns, util.NoDataPlaceholder)),
		fmt.Sprintf("Si me sugirieran algo para convencerme, sería: %s.", util.FirstOr(eval.Suggestions, util.NoDataPlaceholder)),
		ss.followUpBlock(persona.Archetype, 2),
	)
}

func (ss *SimulationService) noveltyReply(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) string {
	return joinSentences(
		fmt.Sprintf("Lo nuevo me llama, y %s sí me dio curiosidad.", conceptNameOr(concept, "esta propuesta")),
		fmt.Sprintf("Lo más interesante que le vi: %s.", util.FirstOr(eval.KeyInsights, util.NoDataPlaceholder)),
		ss.followUpBlock(persona.Archetype, 3),
	)
}

func (ss *SimulationService) genericReply(persona entities.PersonaProfile, eval *entities.EvaluationContext) string {
	return joinSentences(
		fmt.Sprintf("Mira, en resumen yo le puse %d de 100.", eval.OverallScore),
		fmt.Sprintf("Lo principal que me quedó fue: %s.", util.FirstOr(eval.KeyInsights, util.NoDataPlaceholder)),
		fmt.Sprintf("Y si me preguntas qué cambiaría: %s.", util.FirstOr(eval.Suggestions, util.NoDataPlaceholder)),
		"Pero cuéntame más de lo que te interesa saber y te lo detallo.",
		ss.followUpBlock(persona.Archetype, 2),
	)
}

// followUpBlock renders 2-4 follow-up questions from the archetype's pool.
func (ss *SimulationService) followUpBlock(archetype entities.Archetype, count int) string {
	questions := knowledge.FollowUps(archetype)
	if count < 2 {
		count = 2
	}
	if count > 4 {
		count = 4
	}
	if count > len(questions) {
		count = len(questions)
	}
	return "Yo también tengo preguntas: " + strings.Join(questions[:count], " ")
}

func (ss *SimulationService) variableReactionOr(eval *entities.EvaluationContext, name string) string {
	if reaction, ok := eval.Variable(name); ok && strings.TrimSpace(reaction.Reaction) != "" {
		return reaction.Reaction
	}
	return util.NoDataPlaceholder
}

func normalizeContext(eval *entities.EvaluationContext, concept *entities.ConceptDetails) (*entities.EvaluationContext, *entities.ConceptDetails) {
	if eval == nil {
		eval = &entities.EvaluationContext{}
	}
	if concept == nil {
		concept = &entities.ConceptDetails{}
	}
	return eval, concept
}

func conceptNameOr(concept *entities.ConceptDetails, fallback string) string {
	if strings.TrimSpace(concept.Name) == "" {
		return fallback
	}
	return concept.Name
}

func regionOf(persona entities.PersonaProfile) string {
	if persona.Location.Region != "" {
		return persona.Location.Region
	}
	return knowledge.RegionForCity(persona.Location.City)
}

func joinSentences(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			cleaned = append(cleaned, part)
		}
	}
	return strings.Join(cleaned, " ")
}
