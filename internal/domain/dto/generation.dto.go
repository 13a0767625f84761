package dto

// Wire contract of the external generation endpoint. Field names follow the
// upstream API, not Go conventions.

type GenerationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MetadataFilter carries the retrieval hints derived from the persona so the
// upstream retrieval layer can bias its sources. Pass-through only.
type MetadataFilter struct {
	PersonaID string `json:"persona_id"`
	Archetype string `json:"archetype"`
	Region    string `json:"region"`
	NSE       string `json:"nse"`
}

type GenerationRequest struct {
	Text                string           `json:"text"`
	SystemPrompt        string           `json:"system_prompt"`
	ConversationHistory []GenerationTurn `json:"conversation_history"`
	MetadataFilter      MetadataFilter   `json:"metadata_filter"`
	OutputTypes         []string         `json:"output_types"`
	Temperature         float64          `json:"temperature"`
	MaxTokens           int              `json:"max_tokens"`
	CreativityLevel     string           `json:"creativity_level"`
	CulturalContext     string           `json:"cultural_context"`
	ProductContext      string           `json:"product_context"`
}

// GenerationResponse tolerates the three field names the endpoint has been
// observed to use for the generated text.
type GenerationResponse struct {
	Answer          string   `json:"answer"`
	Response        string   `json:"response"`
	Text            string   `json:"text"`
	Insights        []string `json:"insights"`
	ConfidenceScore *float64 `json:"confidence_score"`
}

// Message returns the generated text regardless of which field carried it.
func (r GenerationResponse) Message() string {
	if r.Answer != "" {
		return r.Answer
	}
	if r.Response != "" {
		return r.Response
	}
	return r.Text
}

// GenerationResult is the normalized outcome handed back to the engine.
type GenerationResult struct {
	Text            string   `json:"text"`
	Insights        []string `json:"insights"`
	ConfidenceScore float64  `json:"confidence_score"`
	Degraded        bool     `json:"degraded"`
}
