package services_test

import (
	"strings"
	"testing"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/knowledge"
	"persona-engine/internal/infra/services"
	"persona-engine/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpeningLineNonEmptyForAllArchetypesWithEmptyContext(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	emptyEval := &entities.EvaluationContext{}

	for _, archetype := range entities.AllArchetypes {
		persona := testPersona(archetype)
		opening := ss.OpeningLine(persona, emptyEval, &entities.ConceptDetails{})
		require.NotEmpty(t, opening, "archetype %s", archetype)
		assert.Contains(t, opening, persona.Name)
	}
}

func TestReplyNonEmptyForAllArchetypesWithEmptyContext(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))

	for _, archetype := range entities.AllArchetypes {
		persona := testPersona(archetype)
		reply := ss.Reply(persona, "¿cuánto cuesta?", &entities.EvaluationContext{}, &entities.ConceptDetails{})
		require.NotEmpty(t, reply, "archetype %s", archetype)
	}
}

func TestOpeningLineHandlesNilContexts(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	opening := ss.OpeningLine(testPersona(entities.ArchetypeControlador), nil, nil)
	assert.NotEmpty(t, opening)
}

func TestControladorPriceQuestionComputesIncrease(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	persona := testPersona(entities.ArchetypeControlador) // gasta $500 al mes

	reply := ss.Reply(persona, "¿cuánto cuesta?", testEvaluation(), testConcept()) // $1200 al mes

	// (1200-500)/500*100 = 140
	assert.Contains(t, reply, "140%")
	assert.Contains(t, reply, "me pareció caro para lo que ofrece")

	followUps := knowledge.FollowUps(entities.ArchetypeControlador)
	found := false
	for _, question := range followUps {
		if strings.Contains(reply, question) {
			found = true
			break
		}
	}
	assert.True(t, found, "reply should include a CONTROLADOR follow-up question")
}

func TestUnknownArchetypeGetsGenericTemplates(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	persona := testPersona(entities.Archetype("DESCONOCIDO"))

	opening := ss.OpeningLine(persona, testEvaluation(), testConcept())
	require.NotEmpty(t, opening)
	assert.Contains(t, opening, "¿Qué te gustaría saber?")

	reply := ss.Reply(persona, "¿cuánto cuesta?", testEvaluation(), testConcept())
	require.NotEmpty(t, reply)
	assert.Contains(t, reply, "62 de 100")
}

func TestTriggerTablesMatchInDeclarationOrder(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	persona := testPersona(entities.ArchetypeProteccionista)

	// Mentions both family and price; the family trigger is declared first.
	reply := ss.Reply(persona, "¿es seguro para mi familia por ese precio?", testEvaluation(), testConcept())

	assert.Contains(t, reply, "familia")
	assert.NotContains(t, reply, "140%")
}

func TestEmptyEvaluationListsUsePlaceholder(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	persona := testPersona(entities.ArchetypeControlador)

	reply := ss.Reply(persona, "¿qué garantía tengo?", &entities.EvaluationContext{}, testConcept())

	assert.Contains(t, reply, util.NoDataPlaceholder)
}

func TestGenericReplyCitesScoreInsightAndSuggestion(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	persona := testPersona(entities.ArchetypeControlador)

	reply := ss.Reply(persona, "mmm no sé qué pensar", testEvaluation(), testConcept())

	assert.Contains(t, reply, "62 de 100")
	assert.Contains(t, reply, "el servicio resuelve un problema real")
	assert.Contains(t, reply, "ofrecer un plan básico más barato")
}

func TestOpeningLineTruncatesLongVariableReaction(t *testing.T) {
	ss := services.NewSimulationService(testLogger(t))
	persona := testPersona(entities.ArchetypeAspiracional)

	eval := testEvaluation()
	long := ""
	for i := 0; i < 30; i++ {
		long += "muy largo "
	}
	eval.Variables["diferenciacion"] = entities.VariableReaction{Reaction: long}

	opening := ss.OpeningLine(persona, eval, testConcept())
	assert.NotEmpty(t, opening)
	assert.Contains(t, opening, "...")
}
