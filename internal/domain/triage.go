package domain

import "time"

// Category constants. These are the taxonomy categories every score vector
// carries; a missing keyword match yields an explicit 0.0, never an absent key.
const (
	CategoryPhysicalSymptoms  = "physical_symptoms"
	CategoryMentalHealth      = "mental_health"
	CategoryChronicConditions = "chronic_conditions"
	CategoryLifestyle         = "lifestyle"
)

// Categories lists the taxonomy categories in canonical order.
var Categories = []string{
	CategoryPhysicalSymptoms,
	CategoryMentalHealth,
	CategoryChronicConditions,
	CategoryLifestyle,
}

// Urgency tier constants, ordered emergency > medium > low.
const (
	UrgencyEmergency = "emergency"
	UrgencyMedium    = "medium"
	UrgencyLow       = "low"
)

// Sentiment label constants.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentError    = "error"
)

// Sentiment method constants. The method tag is the only way the fail-over
// between the two paths is visible to callers.
const (
	SentimentMethodModel = "model-based"
	SentimentMethodRule  = "rule-based"
)

// Analysis method constants.
const (
	MethodRuleBased = "rule_based"
	MethodHybrid    = "hybrid"
)

// SentimentResult holds the outcome of sentiment analysis over one text.
type SentimentResult struct {
	Label      string  `json:"label"`      // "positive", "negative", "neutral", "error"
	Confidence float64 `json:"confidence"` // 0.0-1.0
	Method     string  `json:"method"`     // "model-based" or "rule-based"
}

// EmergencyCheck holds the outcome of the emergency keyword scan.
// MatchedKeywords preserves emergency-set order so callers can show which
// phrases triggered the override.
type EmergencyCheck struct {
	IsEmergency     bool     `json:"is_emergency"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// TriageResult is the unit of output: one immutable record per input text.
type TriageResult struct {
	OriginalText   string             `json:"original_text"`
	NormalizedText string             `json:"normalized_text"`
	CategoryScores map[string]float64 `json:"category_scores"` // one score in [0,1] per category
	Emergency      EmergencyCheck     `json:"emergency_check"`
	Sentiment      SentimentResult    `json:"sentiment"`
	UrgencyLevel   string             `json:"urgency_level"` // "emergency", "medium", "low"
	Advice         []string           `json:"advice"`
	Recommendation string             `json:"recommendation"`
	AnalysisMethod string             `json:"analysis_method"` // "hybrid" when the model path is loaded

	// Error carries a validation failure. When set, all analysis fields are
	// present at safe defaults so consumers never need special-case handling.
	Error string `json:"error,omitempty"`

	ProcessingTimeMs int64     `json:"processing_time_ms"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// ItemResult wraps one batch element: exactly one of Result or Error is set.
// Index always refers to the element's position in the submitted batch.
type ItemResult struct {
	Index  int           `json:"index"`
	Result *TriageResult `json:"result,omitempty"`
	Error  *ItemError    `json:"error,omitempty"`
}

// ZeroScores returns a score vector with every category at exactly 0.0.
func ZeroScores() map[string]float64 {
	scores := make(map[string]float64, len(Categories))
	for _, c := range Categories {
		scores[c] = 0.0
	}
	return scores
}
