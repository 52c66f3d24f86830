package models

// FarmerQuery is the request body for POST /api/farmer-query.
type FarmerQuery struct {
	Text      string  `json:"text"`
	QueryType string  `json:"query_type"`
	Location  *string `json:"location"`
	FarmerID  string  `json:"farmer_id"`
}

// QueryResponse is the structured result the backend returns for one query.
// Everything beyond ID, Status and OriginalText is optional; an absent field
// simply omits the matching UI section.
type QueryResponse struct {
	ID              string          `json:"id"`
	OriginalText    string          `json:"original_text"`
	TranslatedText  string          `json:"translated_text,omitempty"`
	Intent          string          `json:"intent,omitempty"`
	Confidence      *float64        `json:"confidence,omitempty"`
	AgentResponses  *AgentResponses `json:"agent_responses,omitempty"`
	Recommendations []string        `json:"recommendations,omitempty"`
	Timestamp       string          `json:"timestamp,omitempty"`
	Status          string          `json:"status"`
}

// AgentResponses carries each backend agent's own result. A nil agent means
// that stage did not run and its badge is not shown at all.
type AgentResponses struct {
	Translation *TranslationResult `json:"translation,omitempty"`
	Analysis    *AnalysisResult    `json:"analysis,omitempty"`
	Advice      *AdviceResult      `json:"advice,omitempty"`
}

// TranslationResult is the translation agent's outcome.
type TranslationResult struct {
	Success        bool   `json:"success"`
	OriginalText   string `json:"original_text,omitempty"`
	TranslatedText string `json:"translated_text,omitempty"`
	Method         string `json:"method,omitempty"`
	Error          string `json:"error,omitempty"`
}

// AnalysisResult is the query-understanding agent's outcome. It has no
// success flag on the wire; a non-empty Error marks failure.
type AnalysisResult struct {
	Intent     string   `json:"intent,omitempty"`
	Crop       string   `json:"crop,omitempty"`
	Location   string   `json:"location,omitempty"`
	Urgency    int      `json:"urgency,omitempty"`
	Concepts   []string `json:"concepts,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Succeeded reports whether the analysis stage completed without error.
func (a *AnalysisResult) Succeeded() bool {
	return a.Error == ""
}

// AdviceResult is the agriculture advisor agent's outcome.
type AdviceResult struct {
	Success       bool   `json:"success"`
	Advice        string `json:"advice,omitempty"`
	Agent         string `json:"agent,omitempty"`
	IntentHandled string `json:"intent_handled,omitempty"`
	Error         string `json:"error,omitempty"`
}

// HistoryEntry records one past submission for the session history list.
// Entries are immutable once created.
type HistoryEntry struct {
	ID        string
	Query     string
	Timestamp string
	Status    string
}

// TranslationRequest is the request body for POST /api/translate.
type TranslationRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// TranslationResponse is the body returned by POST /api/translate.
type TranslationResponse struct {
	Success        bool   `json:"success"`
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HealthStatus is the body returned by GET /api/health.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Agents    map[string]string `json:"agents"`
}
