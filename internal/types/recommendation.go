package types

// FacetScores holds the per-facet sub-scores of a match, each in [0,100].
type FacetScores struct {
	Interests   float64 `json:"interests"`
	Skills      float64 `json:"skills"`
	Strengths   float64 `json:"strengths"`
	Preferences float64 `json:"preferences"`
}

// MatchResult is the outcome of scoring one profile against one career.
type MatchResult struct {
	CareerID     string      `json:"career_id"`
	Score        int         `json:"score"`
	Facets       FacetScores `json:"facets"`
	Confidence   string      `json:"confidence"`
	Explanations []string    `json:"explanations"`
}

// Recommendation joins a MatchResult with catalog display fields and justification text.
type Recommendation struct {
	CareerID        string      `json:"career_id"`
	CareerName      string      `json:"career_name"`
	Domain          string      `json:"domain"`
	Description     string      `json:"description"`
	MatchScore      int         `json:"match_score"`
	Confidence      string      `json:"confidence"`
	Facets          FacetScores `json:"facets"`
	Explanations    []string    `json:"explanations"`
	KeyRequirements []string    `json:"key_requirements"`
	SalaryRange     string      `json:"salary_range"`
	Education       string      `json:"education"`
	Reasons         []string    `json:"reasons"`
	WhyItFits       string      `json:"why_it_fits"`
}

// SearchHit is a single keyword search match against the catalog.
type SearchHit struct {
	CareerID        string   `json:"career_id"`
	Career          Career   `json:"career"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// SummaryCareer is a compact reference to a recommended career.
type SummaryCareer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// Summary is an exportable snapshot of a profile and its recommended careers.
type Summary struct {
	Profile Profile         `json:"profile"`
	Careers []SummaryCareer `json:"careers"`
}
