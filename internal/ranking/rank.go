package ranking

import (
	"sort"

	"github.com/jonathan/career-matcher/internal/types"
)

// Ranking defaults
const (
	DefaultTopN     = 5
	DefaultMinScore = 20

	keyRequirementCount = 3
)

// Options controls which scored careers survive ranking.
type Options struct {
	TopN     int // values below 1 fall back to DefaultTopN
	MinScore int // scores must be strictly greater to be kept
}

// DefaultOptions returns the standard ranking options.
func DefaultOptions() Options {
	return Options{TopN: DefaultTopN, MinScore: DefaultMinScore}
}

// Ranker scores a set of careers and returns the best matches.
type Ranker struct {
	scorer    *Scorer
	explainer *Explainer
}

// NewRanker creates a Ranker from a scorer and explainer.
func NewRanker(scorer *Scorer, explainer *Explainer) *Ranker {
	return &Ranker{scorer: scorer, explainer: explainer}
}

type scoredCareer struct {
	career types.Career
	result types.MatchResult
}

// Rank scores every career, keeps those above opts.MinScore and returns at
// most opts.TopN recommendations. Ties on score are broken by career ID so the
// output is deterministic. An empty result is returned as an empty slice.
func (r *Ranker) Rank(profile types.Profile, careers []types.Career, opts Options) []types.Recommendation {
	topN := opts.TopN
	if topN < 1 {
		topN = DefaultTopN
	}

	scored := make([]scoredCareer, 0, len(careers))
	for _, career := range careers {
		result := r.scorer.Score(profile, career)
		if result.Score > opts.MinScore {
			scored = append(scored, scoredCareer{career: career, result: result})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].result.Score != scored[j].result.Score {
			return scored[i].result.Score > scored[j].result.Score
		}
		return scored[i].career.ID < scored[j].career.ID
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	recommendations := make([]types.Recommendation, 0, len(scored))
	for _, sc := range scored {
		recommendations = append(recommendations, r.recommendation(profile, sc))
	}
	return recommendations
}

func (r *Ranker) recommendation(profile types.Profile, sc scoredCareer) types.Recommendation {
	reasons := r.explainer.Explain(profile, sc.career, sc.result.Facets)
	return types.Recommendation{
		CareerID:        sc.career.ID,
		CareerName:      sc.career.Name,
		Domain:          sc.career.Domain,
		Description:     sc.career.Description,
		MatchScore:      sc.result.Score,
		Confidence:      sc.result.Confidence,
		Facets:          sc.result.Facets,
		Explanations:    sc.result.Explanations,
		KeyRequirements: sc.career.TopSkills(keyRequirementCount),
		SalaryRange:     sc.career.SalaryRange,
		Education:       sc.career.Education,
		Reasons:         reasons,
		WhyItFits:       JoinReasons(reasons),
	}
}
