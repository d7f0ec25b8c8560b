package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-matcher/internal/parsing"
	"github.com/jonathan/career-matcher/internal/types"
)

// ReasonSeparator joins individual reasons into a single justification line.
const ReasonSeparator = " • "

// maxReasonTerms caps how many profile terms a single reason names.
const maxReasonTerms = 2

// Explainer turns a scored match into human-readable reasons.
type Explainer struct {
	normalizer *parsing.Normalizer
}

// NewExplainer creates an Explainer that expands interests with the given normalizer.
func NewExplainer(normalizer *parsing.Normalizer) *Explainer {
	if normalizer == nil {
		normalizer = parsing.NewNormalizer(nil)
	}
	return &Explainer{normalizer: normalizer}
}

// Explain returns reasons in fixed order: interests, skills, strengths, domain.
// A facet is only inspected when its sub-score is non-zero. The domain reason
// is always present.
func (e *Explainer) Explain(profile types.Profile, career types.Career, facets types.FacetScores) []string {
	reasons := make([]string, 0, 4)

	if facets.Interests > 0 {
		if matched := e.exactInterests(profile.Interests, career.Interests); len(matched) > 0 {
			reasons = append(reasons, "Aligns with your interests in "+joinFirst(matched))
		}
	}
	if facets.Skills > 0 {
		if matched := containedTerms(profile.Skills, career.Skills); len(matched) > 0 {
			reasons = append(reasons, "Leverages your skills in "+joinFirst(matched))
		}
	}
	if facets.Strengths > 0 {
		if matched := containedTerms(profile.Strengths, career.Strengths); len(matched) > 0 {
			reasons = append(reasons, "Matches your strengths in "+joinFirst(matched))
		}
	}

	reasons = append(reasons, fmt.Sprintf("Falls within the %s domain", career.Domain))
	return reasons
}

// JoinReasons renders reasons as one line.
func JoinReasons(reasons []string) string {
	return strings.Join(reasons, ReasonSeparator)
}

// exactInterests returns the raw interests, as given, that have at least one
// expansion equal to a career interest.
func (e *Explainer) exactInterests(interests, careerInterests []string) []string {
	matched := make([]string, 0, len(interests))
	for _, raw := range interests {
		for _, term := range e.normalizer.Normalize(raw) {
			if term != "" && containsTerm(careerInterests, term) {
				matched = append(matched, raw)
				break
			}
		}
	}
	return matched
}

func containedTerms(terms, careerTerms []string) []string {
	matched := make([]string, 0, len(terms))
	for _, raw := range terms {
		term := parsing.NormalizeTerm(raw)
		if term != "" && containsInAny(term, careerTerms) {
			matched = append(matched, raw)
		}
	}
	return matched
}

func joinFirst(terms []string) string {
	if len(terms) > maxReasonTerms {
		terms = terms[:maxReasonTerms]
	}
	return strings.Join(terms, ", ")
}
