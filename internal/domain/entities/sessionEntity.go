package entities

import "time"

type TurnRole string

const (
	RoleUser    TurnRole = "user"
	RolePersona TurnRole = "persona"
)

// SimulationState tracks where the offline simulator stands for a session.
type SimulationState string

const (
	SimIdle              SimulationState = "idle"
	SimAwaitingFirstOpen SimulationState = "awaiting_first_open"
	SimConversing        SimulationState = "conversing"
)

// ConversationTurn is one message in a session. Turns belong exclusively to
// the session that created them and are never edited after the fact.
type ConversationTurn struct {
	ID        string    `json:"id" bson:"id"`
	Role      TurnRole  `json:"role" bson:"role"`
	Content   string    `json:"content" bson:"content"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ConversationSession is the append-only log of turns exchanged with one
// persona. It is the only entity the engine mutates during a conversation.
type ConversationSession struct {
	ID         string             `json:"id" bson:"id"`
	PersonaID  string             `json:"persona_id" bson:"persona_id"`
	Turns      []ConversationTurn `json:"turns" bson:"turns"`
	State      SimulationState    `json:"state" bson:"state"`
	Evaluation *EvaluationContext `json:"evaluation,omitempty" bson:"evaluation,omitempty"`
	Concept    *ConceptDetails    `json:"concept,omitempty" bson:"concept,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
	Closed     bool               `json:"closed" bson:"closed"`
}

// SessionSnapshot is the self-contained export artifact handed to the
// download collaborator.
type SessionSnapshot struct {
	SessionID  string             `json:"session_id"`
	Persona    PersonaProfile     `json:"persona"`
	Evaluation *EvaluationContext `json:"evaluation,omitempty"`
	Concept    *ConceptDetails    `json:"concept,omitempty"`
	Turns      []ConversationTurn `json:"turns"`
	ExportedAt time.Time          `json:"exported_at"`
}

func (s SessionSnapshot) GetID() string {
	return s.SessionID
}
