package llm

// RoutingDecision is the structured classification result.
type RoutingDecision struct {
	Agent      string  `json:"agent"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"` // 0.0-1.0
}

// GenerateInput carries everything needed to produce a grounded answer.
type GenerateInput struct {
	Query               string
	AgentName           string
	ContextData         interface{} // serialized as JSON into the prompt
	SystemContext       string
	Language            string
	ConversationHistory string
}
