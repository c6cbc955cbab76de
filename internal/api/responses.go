package api

import "github.com/northhealth/triage/internal/domain"

// AnalyzeRequest represents a single analysis request
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeResponse represents a single analysis response
type AnalyzeResponse struct {
	Result *domain.TriageResult `json:"result"`
	Error  string               `json:"error,omitempty"`
}

// BatchAnalyzeRequest represents a batch analysis request
type BatchAnalyzeRequest struct {
	Texts []string `json:"texts" binding:"required,min=1"`
}

// BatchAnalyzeResponse represents a batch analysis response
type BatchAnalyzeResponse struct {
	Results []domain.ItemResult `json:"results"`
	Summary BatchSummary        `json:"summary"`
}

// BatchSummary aggregates one batch's outcomes. Category counts use a fixed
// score cutoff so weak matches do not inflate the distribution.
type BatchSummary struct {
	Total                int            `json:"total"`
	Valid                int            `json:"valid"`
	Errors               int            `json:"errors"`
	UrgencyDistribution  map[string]int `json:"urgency_distribution"`
	CategoryDistribution map[string]int `json:"category_distribution"`
}

// FileAnalyzeResponse represents a CSV file analysis response. Only a sample
// of per-row results is returned; the summary covers every analyzed row.
type FileAnalyzeResponse struct {
	Summary          BatchSummary        `json:"summary"`
	ProcessedRows    int                 `json:"processed_rows"`
	OriginalFileRows int                 `json:"original_file_rows"`
	SampleResults    []domain.ItemResult `json:"sample_results"`
	ColumnUsed       string              `json:"column_used"`
}

// categoryCountCutoff: a category counts toward the distribution only when
// its score clears this.
const categoryCountCutoff = 0.3

// summarize builds the distribution counts over a slice of item results.
func summarize(results []domain.ItemResult) BatchSummary {
	summary := BatchSummary{
		Total: len(results),
		UrgencyDistribution: map[string]int{
			domain.UrgencyEmergency: 0,
			domain.UrgencyMedium:    0,
			domain.UrgencyLow:       0,
		},
		CategoryDistribution: make(map[string]int, len(domain.Categories)),
	}
	for _, c := range domain.Categories {
		summary.CategoryDistribution[c] = 0
	}

	for i := range results {
		result := results[i].Result
		if result == nil {
			summary.Errors++
			continue
		}
		summary.Valid++
		summary.UrgencyDistribution[result.UrgencyLevel]++
		for category, score := range result.CategoryScores {
			if score > categoryCountCutoff {
				summary.CategoryDistribution[category]++
			}
		}
	}

	return summary
}
