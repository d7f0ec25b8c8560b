// Package recommender is the career recommendation facade: it wires the
// catalog, normalizer and ranking pipeline into the operations exposed to
// the CLI and HTTP server.
package recommender

import (
	"context"
	"fmt"

	"github.com/jonathan/career-matcher/internal/catalog"
	"github.com/jonathan/career-matcher/internal/parsing"
	"github.com/jonathan/career-matcher/internal/ranking"
	"github.com/jonathan/career-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

const (
	// maxSummaryCareers caps the careers listed in an exported summary.
	maxSummaryCareers = 3

	// batchConcurrency bounds the profiles scored at once by RecommendBatch.
	batchConcurrency = 8
)

// Engine answers recommendation, detail and learning path queries over an
// immutable catalog. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	scorer  *ranking.Scorer
	ranker  *ranking.Ranker
	options ranking.Options
}

// Option configures an Engine.
type Option func(*Engine)

// WithTopN sets the number of recommendations returned when a caller passes topN < 1.
func WithTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.options.TopN = n
		}
	}
}

// WithMinScore sets the exclusive score threshold for recommendations.
func WithMinScore(score int) Option {
	return func(e *Engine) {
		e.options.MinScore = score
	}
}

// New creates an Engine over the catalog. A nil catalog uses catalog.Default().
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	normalizer := parsing.NewNormalizer(cat.Abbreviations())
	scorer := ranking.NewScorer(normalizer, cat.RelatedTerms())

	e := &Engine{
		catalog: cat,
		scorer:  scorer,
		ranker:  ranking.NewRanker(scorer, ranking.NewExplainer(normalizer)),
		options: ranking.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine ranks against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Recommend normalizes the profile and returns up to topN ranked careers.
// topN < 1 uses the engine default. An empty or insufficient profile yields
// an empty slice.
func (e *Engine) Recommend(profile types.Profile, topN int) []types.Recommendation {
	opts := e.options
	if topN > 0 {
		opts.TopN = topN
	}
	return e.ranker.Rank(parsing.NormalizeProfile(profile), e.catalog.All(), opts)
}

// RecommendBatch runs Recommend for every profile concurrently. Results are
// returned in input order. Cancelling ctx stops scheduling further profiles.
func (e *Engine) RecommendBatch(ctx context.Context, profiles []types.Profile, topN int) ([][]types.Recommendation, error) {
	results := make([][]types.Recommendation, len(profiles))
	if len(profiles) == 0 {
		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, profile := range profiles {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			results[i] = e.Recommend(profile, topN)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Score evaluates a profile against a single career.
func (e *Engine) Score(profile types.Profile, careerID string) (types.MatchResult, error) {
	career, err := e.Details(careerID)
	if err != nil {
		return types.MatchResult{}, err
	}
	return e.scorer.Score(parsing.NormalizeProfile(profile), career), nil
}

// Details returns the full catalog entry for an identity.
func (e *Engine) Details(careerID string) (types.Career, error) {
	career, ok := e.catalog.Get(careerID)
	if !ok {
		return types.Career{}, &CareerNotFoundError{CareerID: careerID}
	}
	return career, nil
}

// Careers lists catalog entries, optionally restricted to one domain.
func (e *Engine) Careers(domain string) []types.Career {
	if domain == "" {
		return e.catalog.All()
	}
	return e.catalog.ByDomain(domain)
}

// Domains lists the distinct catalog domains.
func (e *Engine) Domains() []string {
	return e.catalog.Domains()
}

// Search runs a keyword search over the catalog.
func (e *Engine) Search(keywords []string) []types.SearchHit {
	return e.catalog.Search(keywords)
}

// Summary builds an exportable snapshot of the profile and up to three of
// the given careers. Unknown identities are skipped.
func (e *Engine) Summary(profile types.Profile, careerIDs []string) types.Summary {
	summary := types.Summary{
		Profile: parsing.NormalizeProfile(profile),
		Careers: make([]types.SummaryCareer, 0, maxSummaryCareers),
	}
	for _, id := range careerIDs {
		if len(summary.Careers) == maxSummaryCareers {
			break
		}
		career, ok := e.catalog.Get(id)
		if !ok {
			continue
		}
		summary.Careers = append(summary.Careers, types.SummaryCareer{
			ID:     career.ID,
			Name:   career.Name,
			Domain: career.Domain,
		})
	}
	return summary
}
