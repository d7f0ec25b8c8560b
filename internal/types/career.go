// Package types provides type definitions for structured data used throughout the career-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Career represents a single entry in the career catalog.
// The interest, skill and strength facets hold canonical lowercase terms.
type Career struct {
	ID          string   `json:"id" validate:"required,max=100"`
	Name        string   `json:"name" validate:"required"`
	Domain      string   `json:"domain" validate:"required"`
	Description string   `json:"description"`
	Interests   []string `json:"key_interests" validate:"dive,required"`
	Skills      []string `json:"key_skills" validate:"dive,required"`
	Strengths   []string `json:"key_strengths" validate:"dive,required"`

	// Descriptive metadata, passed through and never scored.
	SalaryRange     string `json:"salary_range"`
	Education       string `json:"education"`
	ExperienceLevel string `json:"experience_level"`
	WorkEnvironment string `json:"work_environment"` // Matched against preferences
	GrowthPotential string `json:"growth_potential"`
	JobSatisfaction string `json:"job_satisfaction"`
	WorkLifeBalance string `json:"work_life_balance"`
	FutureOutlook   string `json:"future_outlook"`
}

// Matchable reports whether the career has at least one interest or skill term.
// Careers without either can never be recommended.
func (c *Career) Matchable() bool {
	return len(c.Interests) > 0 || len(c.Skills) > 0
}

// Clone returns a deep copy so callers cannot mutate catalog-owned slices.
func (c *Career) Clone() Career {
	out := *c
	out.Interests = cloneStrings(c.Interests)
	out.Skills = cloneStrings(c.Skills)
	out.Strengths = cloneStrings(c.Strengths)
	return out
}

// TopSkills returns up to n leading skill terms of the career.
func (c *Career) TopSkills(n int) []string {
	if n > len(c.Skills) {
		n = len(c.Skills)
	}
	if n <= 0 {
		return []string{}
	}
	return cloneStrings(c.Skills[:n])
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
