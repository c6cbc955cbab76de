// Package taxonomy holds the static keyword taxonomy, emergency keyword set,
// and advice catalog that drive triage classification. The data is loaded
// once at startup and shared read-only across all requests.
package taxonomy

// CategoryKeywords maps one category to its ordered keyword list.
type CategoryKeywords struct {
	Name     string   `yaml:"name"     json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// SymptomAdvice pairs a symptom keyword with its ordered advice list.
// Earlier advice entries are preferred when only a few items are taken.
type SymptomAdvice struct {
	Symptom string   `yaml:"symptom" json:"symptom"`
	Advice  []string `yaml:"advice"  json:"advice"`
}

// CategoryAdvice holds the ordered symptom entries for one category.
// Order matters: the first symptom found in the text wins, and the first
// entry doubles as the category's best-guess default.
type CategoryAdvice struct {
	Category string          `yaml:"category" json:"category"`
	Symptoms []SymptomAdvice `yaml:"symptoms" json:"symptoms"`
}

// Taxonomy bundles all static classification data. Immutable after load.
type Taxonomy struct {
	Categories []CategoryKeywords `yaml:"categories" json:"categories"`
	// Emergency is an independent phrase set; any match overrides every
	// other signal.
	Emergency []string         `yaml:"emergency" json:"emergency"`
	Advice    []CategoryAdvice `yaml:"advice" json:"advice"`
	// Generic is the fallback advice used when no category scores above
	// the advice threshold.
	Generic []string `yaml:"generic" json:"generic"`
}

// KeywordsFor returns the keyword list for a category, or nil if unknown.
func (t *Taxonomy) KeywordsFor(category string) []string {
	for i := range t.Categories {
		if t.Categories[i].Name == category {
			return t.Categories[i].Keywords
		}
	}
	return nil
}

// AdviceFor returns the advice catalog entry for a category.
// Not every category carries advice; chronic conditions route to the
// generic fallback.
func (t *Taxonomy) AdviceFor(category string) (*CategoryAdvice, bool) {
	for i := range t.Advice {
		if t.Advice[i].Category == category {
			return &t.Advice[i], true
		}
	}
	return nil, false
}
