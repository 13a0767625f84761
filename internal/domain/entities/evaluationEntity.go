package entities

// VariableReaction holds one persona's reaction to a named concept variable
// (price, benefits, differentiation, ...).
type VariableReaction struct {
	Reaction         string `json:"reaction" bson:"reaction"`
	SpecificFeedback string `json:"specific_feedback" bson:"specific_feedback"`
}

// EvaluationContext is a prior structured assessment of a concept by one
// persona. It is created once per concept evaluation and treated as
// immutable for the whole lifetime of a simulated conversation.
type EvaluationContext struct {
	OverallScore int                         `json:"overall_score" bson:"overall_score"`
	Sentiment    string                      `json:"sentiment" bson:"sentiment"`
	KeyInsights  []string                    `json:"key_insights" bson:"key_insights"`
	Concerns     []string                    `json:"concerns" bson:"concerns"`
	Suggestions  []string                    `json:"suggestions" bson:"suggestions"`
	Variables    map[string]VariableReaction `json:"variables" bson:"variables"`
}

// Variable returns the reaction for a named variable, ok=false when the
// evaluation never covered it.
func (e EvaluationContext) Variable(name string) (VariableReaction, bool) {
	if e.Variables == nil {
		return VariableReaction{}, false
	}
	reaction, ok := e.Variables[name]
	return reaction, ok
}

// ConceptDetails describes the product or campaign concept a conversation
// revolves around.
type ConceptDetails struct {
	Name         string  `json:"name" bson:"name"`
	Category     string  `json:"category" bson:"category"`
	Description  string  `json:"description" bson:"description"`
	MonthlyPrice float64 `json:"monthly_price" bson:"monthly_price"`
}
