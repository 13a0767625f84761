package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"persona-engine/internal/domain/entities"
	"persona-engine/internal/infra/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionClosed is returned when a turn arrives for a session the UI
	// already closed, e.g. a remote response that outlived its request.
	ErrSessionClosed = errors.New("session is closed")
)

// SessionService keeps the per-conversation turn logs. Sessions are never
// shared between conversations; the registry lock only guards the map
// itself.
type SessionService struct {
	Logger *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*sessionRecord
}

type sessionRecord struct {
	session entities.ConversationSession
	persona entities.PersonaProfile
}

func NewSessionService(log *logger.Logger) *SessionService {
	return &SessionService{
		Logger:   log,
		sessions: make(map[string]*sessionRecord),
	}
}

func (s *SessionService) Open(persona entities.PersonaProfile, eval *entities.EvaluationContext, concept *entities.ConceptDetails) *entities.ConversationSession {
	now := time.Now()
	session := entities.ConversationSession{
		ID:         uuid.NewString(),
		PersonaID:  persona.ID,
		Turns:      []entities.ConversationTurn{},
		State:      entities.SimAwaitingFirstOpen,
		Evaluation: eval,
		Concept:    concept,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionRecord{session: session, persona: persona}
	s.mu.Unlock()

	s.Logger.Info(fmt.Sprintf("Opened session %s for persona %s", session.ID, persona.ID))
	return &session
}

func (s *SessionService) Get(sessionID string) (*entities.ConversationSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := record.session
	copied.Turns = append([]entities.ConversationTurn{}, record.session.Turns...)
	return &copied, nil
}

// Append adds one turn. Closed sessions reject the append so history stays
// exactly as it was at close time.
func (s *SessionService) Append(sessionID string, role entities.TurnRole, content string) (entities.ConversationTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[sessionID]
	if !ok {
		return entities.ConversationTurn{}, ErrSessionNotFound
	}
	if record.session.Closed {
		s.Logger.Warn(fmt.Sprintf("Discarding turn for closed session %s", sessionID))
		return entities.ConversationTurn{}, ErrSessionClosed
	}

	turn := entities.ConversationTurn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	record.session.Turns = append(record.session.Turns, turn)
	record.session.UpdatedAt = turn.Timestamp
	return turn, nil
}

func (s *SessionService) History(sessionID string) ([]entities.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]entities.ConversationTurn{}, record.session.Turns...), nil
}

func (s *SessionService) SetState(sessionID string, state entities.SimulationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	record.session.State = state
	return nil
}

func (s *SessionService) Close(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	record.session.Closed = true
	record.session.UpdatedAt = time.Now()
	s.Logger.Info(fmt.Sprintf("Closed session %s", sessionID))
	return nil
}

func (s *SessionService) ExportSnapshot(sessionID string) (entities.SessionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.sessions[sessionID]
	if !ok {
		return entities.SessionSnapshot{}, ErrSessionNotFound
	}

	return entities.SessionSnapshot{
		SessionID:  sessionID,
		Persona:    record.persona,
		Evaluation: record.session.Evaluation,
		Concept:    record.session.Concept,
		Turns:      append([]entities.ConversationTurn{}, record.session.Turns...),
		ExportedAt: time.Now(),
	}, nil
}
