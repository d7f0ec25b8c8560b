// Package ranking scores careers against user profiles and ranks the results.
package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/career-matcher/internal/catalog"
	"github.com/jonathan/career-matcher/internal/parsing"
	"github.com/jonathan/career-matcher/internal/types"
)

// Facet weights for the overall match score
const (
	interestWeight   = 0.40
	skillWeight      = 0.30
	strengthWeight   = 0.20
	preferenceWeight = 0.10
)

const (
	minScore = 0
	maxScore = 100
)

// MatchTier is the strength of a single interest term match against a career.
type MatchTier int

// Tiers are evaluated from strongest to weakest; the first that applies wins.
const (
	TierNone MatchTier = iota
	TierRelated
	TierSubstring
	TierExact
)

// Points returns the interest points awarded for the tier.
func (t MatchTier) Points() float64 {
	switch t {
	case TierExact:
		return 100
	case TierSubstring:
		return 60
	case TierRelated:
		return 30
	default:
		return 0
	}
}

func (t MatchTier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSubstring:
		return "substring"
	case TierRelated:
		return "related"
	default:
		return "none"
	}
}

// Scorer computes facet scores and the weighted overall score for a profile
// and a career. A Scorer is safe for concurrent use.
type Scorer struct {
	normalizer *parsing.Normalizer
	related    catalog.TermTable
	reverse    map[string][]string
}

// NewScorer builds a scorer from an abbreviation normalizer and a
// related-terms table. The table is indexed in both directions so that a
// term listed under a key is also related back to that key.
func NewScorer(normalizer *parsing.Normalizer, related catalog.TermTable) *Scorer {
	if normalizer == nil {
		normalizer = parsing.NewNormalizer(nil)
	}
	s := &Scorer{
		normalizer: normalizer,
		related:    make(catalog.TermTable, len(related)),
		reverse:    make(map[string][]string),
	}
	for key, terms := range related {
		key = parsing.NormalizeTerm(key)
		for _, term := range terms {
			term = parsing.NormalizeTerm(term)
			if term == "" || term == key {
				continue
			}
			s.related[key] = append(s.related[key], term)
			s.reverse[term] = append(s.reverse[term], key)
		}
	}
	return s
}

// Tier classifies a single canonical term against a career's interests.
func (s *Scorer) Tier(term string, interests []string) MatchTier {
	if term == "" {
		return TierNone
	}
	if containsTerm(interests, term) {
		return TierExact
	}
	for _, interest := range interests {
		if strings.Contains(interest, term) || strings.Contains(term, interest) {
			return TierSubstring
		}
	}
	if s.isRelated(term, interests) {
		return TierRelated
	}
	return TierNone
}

func (s *Scorer) isRelated(term string, interests []string) bool {
	for _, rel := range s.related[term] {
		if containsTerm(interests, rel) {
			return true
		}
	}
	for _, key := range s.reverse[term] {
		if containsTerm(interests, key) {
			return true
		}
	}
	return false
}

// Score evaluates a profile against a single career.
func (s *Scorer) Score(profile types.Profile, career types.Career) types.MatchResult {
	facets := types.FacetScores{
		Interests:   s.interestScore(profile.Interests, career.Interests),
		Skills:      containmentScore(profile.Skills, career.Skills),
		Strengths:   containmentScore(profile.Strengths, career.Strengths),
		Preferences: preferenceScore(profile.Preferences, career.WorkEnvironment),
	}

	score := Combine(facets)
	return types.MatchResult{
		CareerID:     career.ID,
		Score:        score,
		Facets:       facets,
		Confidence:   Confidence(score),
		Explanations: facetExplanations(facets),
	}
}

// Combine applies the facet weights and rounds half to even, clamped to 0..100.
func Combine(f types.FacetScores) int {
	weighted := f.Interests*interestWeight +
		f.Skills*skillWeight +
		f.Strengths*strengthWeight +
		f.Preferences*preferenceWeight

	score := int(math.RoundToEven(weighted))
	if score > maxScore {
		score = maxScore
	}
	if score < minScore {
		score = minScore
	}
	return score
}

// interestScore sums tier points over every expansion of every raw interest
// and averages over the raw interest count.
func (s *Scorer) interestScore(interests, careerInterests []string) float64 {
	if len(interests) == 0 {
		return 0
	}

	total := 0.0
	for _, raw := range interests {
		for _, term := range s.normalizer.Normalize(raw) {
			total += s.Tier(term, careerInterests).Points()
		}
	}
	return math.Min(total/float64(len(interests)), maxScore)
}

// containmentScore is the share of profile terms found as a substring of
// any career term.
func containmentScore(terms, careerTerms []string) float64 {
	if len(terms) == 0 {
		return 0
	}

	matched := 0
	for _, term := range terms {
		term = parsing.NormalizeTerm(term)
		if term != "" && containsInAny(term, careerTerms) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms)) * 100
}

func facetExplanations(f types.FacetScores) []string {
	explanations := make([]string, 0, 4)
	if f.Interests > 0 {
		explanations = append(explanations, fmt.Sprintf("Interest alignment: %s%%", formatPercent(f.Interests)))
	}
	if f.Skills > 0 {
		explanations = append(explanations, fmt.Sprintf("Skills match: %s%%", formatPercent(f.Skills)))
	}
	if f.Strengths > 0 {
		explanations = append(explanations, fmt.Sprintf("Strengths match: %s%%", formatPercent(f.Strengths)))
	}
	if f.Preferences > 0 {
		explanations = append(explanations, fmt.Sprintf("Work preferences: %s%%", formatPercent(f.Preferences)))
	}
	return explanations
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

func containsTerm(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}

func containsInAny(term string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}
