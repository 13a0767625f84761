package services

import (
	"context"
	"errors"
	"fmt"

	"persona-engine/internal/domain/dto"
	"persona-engine/internal/domain/entities"
	Iservices "persona-engine/internal/domain/interfaces/services"
	"persona-engine/internal/domain/knowledge"
	"persona-engine/internal/infra/logger"
	"persona-engine/internal/infra/repository"
)

const maxHistoryTurns = 20

// DialogueService drives one user turn end to end. It is the only component
// that touches the session log, so turn ordering is decided in exactly one
// place.
type DialogueService struct {
	Logger     *logger.Logger
	Personas   Iservices.IPersonaService
	Compiler   *PromptCompilerService
	Generation Iservices.IGenerationService
	Simulation Iservices.ISimulationService
	Sessions   Iservices.ISessionService
	Archive    *repository.SessionArchive // optional
}

func NewDialogueService(
	log *logger.Logger,
	personas Iservices.IPersonaService,
	compiler *PromptCompilerService,
	generation Iservices.IGenerationService,
	simulation Iservices.ISimulationService,
	sessions Iservices.ISessionService,
	archive *repository.SessionArchive,
) *DialogueService {
	return &DialogueService{
		Logger:     log,
		Personas:   personas,
		Compiler:   compiler,
		Generation: generation,
		Simulation: simulation,
		Sessions:   sessions,
		Archive:    archive,
	}
}

// Chat answers a user message through the remote generation endpoint. When
// the health probe says the endpoint is down, the turn is served locally:
// by the simulator when the session carries an evaluation context, by the
// degraded fallback otherwise.
func (ds *DialogueService) Chat(ctx context.Context, personaID string, req dto.ChatRequest) (dto.ChatResponse, error) {
	persona, err := ds.Personas.FindByID(personaID)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("persona lookup: %w", err)
	}

	session, err := ds.sessionFor(persona, req.SessionID, nil, nil)
	if err != nil {
		return dto.ChatResponse{}, err
	}

	if _, err := ds.Sessions.Append(session.ID, entities.RoleUser, req.Message); err != nil {
		return dto.ChatResponse{}, fmt.Errorf("append user turn: %w", err)
	}

	history, err := ds.Sessions.History(session.ID)
	if err != nil {
		return dto.ChatResponse{}, err
	}
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	directive := ds.Compiler.Compile(persona, req.ProductContext)

	var response dto.ChatResponse
	if ds.Generation.HealthCheck(ctx) {
		result := ds.Generation.Send(ctx, persona, directive, req.Message, req.ProductContext, history)
		source := "remote"
		if result.Degraded {
			source = "fallback"
		}
		response = dto.ChatResponse{
			SessionID:  session.ID,
			Reply:      result.Text,
			Confidence: result.ConfidenceScore,
			Source:     source,
		}
	} else if session.Evaluation != nil {
		ds.Logger.Warn("Generation endpoint unavailable, serving simulated reply")
		reply := ds.Simulation.Reply(persona, req.Message, session.Evaluation, session.Concept)
		response = dto.ChatResponse{
			SessionID:  session.ID,
			Reply:      reply,
			Confidence: LowConfidenceSentinel,
			Source:     "simulation",
		}
	} else {
		ds.Logger.Warn("Generation endpoint unavailable and no evaluation context, serving fallback")
		result := ds.degradedResult(persona)
		response = dto.ChatResponse{
			SessionID:  session.ID,
			Reply:      result.Text,
			Confidence: result.ConfidenceScore,
			Source:     "fallback",
		}
	}

	// The session may have been closed while the remote call was in
	// flight; Append rejects the stale reply and history stays intact.
	if _, err := ds.Sessions.Append(session.ID, entities.RolePersona, response.Reply); err != nil {
		if errors.Is(err, ErrSessionClosed) {
			ds.Logger.Warn(fmt.Sprintf("Dropping reply for session %s closed mid-request", session.ID))
			return dto.ChatResponse{}, err
		}
		return dto.ChatResponse{}, fmt.Errorf("append persona turn: %w", err)
	}

	response.FollowUps = followUpSuggestions(persona.Archetype)
	return response, nil
}

// Simulate serves the fully offline mode. A request without a session id
// opens the session and returns the archetype's opening line; later calls
// answer turn by turn.
func (ds *DialogueService) Simulate(ctx context.Context, personaID string, req dto.SimulateRequest) (dto.ChatResponse, error) {
	persona, err := ds.Personas.FindByID(personaID)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("persona lookup: %w", err)
	}

	if req.SessionID == "" {
		session := ds.Sessions.Open(persona, req.Evaluation, req.Concept)
		opening := ds.Simulation.OpeningLine(persona, req.Evaluation, req.Concept)
		if _, err := ds.Sessions.Append(session.ID, entities.RolePersona, opening); err != nil {
			return dto.ChatResponse{}, fmt.Errorf("append opening turn: %w", err)
		}
		if err := ds.Sessions.SetState(session.ID, entities.SimConversing); err != nil {
			return dto.ChatResponse{}, err
		}
		return dto.ChatResponse{
			SessionID:  session.ID,
			Reply:      opening,
			FollowUps:  followUpSuggestions(persona.Archetype),
			Confidence: 1,
			Source:     "simulation",
		}, nil
	}

	session, err := ds.Sessions.Get(req.SessionID)
	if err != nil {
		return dto.ChatResponse{}, err
	}

	if _, err := ds.Sessions.Append(session.ID, entities.RoleUser, req.Message); err != nil {
		return dto.ChatResponse{}, fmt.Errorf("append user turn: %w", err)
	}

	reply := ds.Simulation.Reply(persona, req.Message, session.Evaluation, session.Concept)
	if _, err := ds.Sessions.Append(session.ID, entities.RolePersona, reply); err != nil {
		return dto.ChatResponse{}, fmt.Errorf("append persona turn: %w", err)
	}

	return dto.ChatResponse{
		SessionID:  session.ID,
		Reply:      reply,
		FollowUps:  followUpSuggestions(persona.Archetype),
		Confidence: 1,
		Source:     "simulation",
	}, nil
}

// Export snapshots a session for the download collaborator and, when an
// archive is configured, persists the snapshot there as well.
func (ds *DialogueService) Export(ctx context.Context, sessionID string) (entities.SessionSnapshot, error) {
	snapshot, err := ds.Sessions.ExportSnapshot(sessionID)
	if err != nil {
		return entities.SessionSnapshot{}, err
	}

	if ds.Archive != nil {
		if err := ds.Archive.Save(ctx, snapshot); err != nil {
			// Archiving is best effort; the caller still gets the snapshot.
			ds.Logger.Error(fmt.Sprintf("Failed to archive session %s: %v", sessionID, err))
		}
	}

	return snapshot, nil
}

func (ds *DialogueService) sessionFor(persona entities.PersonaProfile, sessionID string, eval *entities.EvaluationContext, concept *entities.ConceptDetails) (*entities.ConversationSession, error) {
	if sessionID == "" {
		return ds.Sessions.Open(persona, eval, concept), nil
	}
	return ds.Sessions.Get(sessionID)
}

func (ds *DialogueService) degradedResult(persona entities.PersonaProfile) dto.GenerationResult {
	fallback := NewFallbackService()
	return dto.GenerationResult{
		Text:            fallback.Fallback(persona),
		ConfidenceScore: LowConfidenceSentinel,
		Degraded:        true,
	}
}

func followUpSuggestions(archetype entities.Archetype) []string {
	questions := knowledge.FollowUps(archetype)
	if len(questions) > 3 {
		questions = questions[:3]
	}
	return questions
}
