package types

// LearningPhase is one step of a learning plan.
type LearningPhase struct {
	Phase     string   `json:"phase"`
	Duration  string   `json:"duration"`
	Focus     string   `json:"focus"`
	Resources []string `json:"resources"`
}

// LearningPlan is a catalog-driven roadmap towards a career.
type LearningPlan struct {
	CareerID                  string          `json:"career_id"`
	Career                    string          `json:"career"`
	DurationMonths            int             `json:"duration_months"`
	Phases                    []LearningPhase `json:"phases"`
	KeySkillsToLearn          []string        `json:"key_skills_to_learn"`
	RecommendedCertifications []string        `json:"recommended_certifications"`
	CareerProgression         []string        `json:"career_progression"`
}
