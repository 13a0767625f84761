package dto

import "persona-engine/internal/domain/entities"

type ChatRequest struct {
	SessionID      string `json:"session_id,omitempty"`
	Message        string `json:"message"`
	ProductContext string `json:"product_context,omitempty"`
}

type ChatResponse struct {
	SessionID  string   `json:"session_id"`
	Reply      string   `json:"reply"`
	FollowUps  []string `json:"follow_ups,omitempty"`
	Confidence float64  `json:"confidence"`
	Source     string   `json:"source"` // remote | fallback | simulation
}

// SimulateRequest drives the offline simulator. The evaluation context and
// concept are supplied once, when the session opens; an empty message on a
// fresh session requests the opening line.
type SimulateRequest struct {
	SessionID  string                      `json:"session_id,omitempty"`
	Message    string                      `json:"message,omitempty"`
	Evaluation *entities.EvaluationContext `json:"evaluation,omitempty"`
	Concept    *entities.ConceptDetails    `json:"concept,omitempty"`
}
