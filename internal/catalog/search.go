package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-matcher/internal/types"
)

// Points awarded per keyword by the facet it was found in.
const (
	interestKeywordPoints    = 3
	skillKeywordPoints       = 2
	strengthKeywordPoints    = 2
	descriptionKeywordPoints = 1
)

// Search scores every career against the keywords by substring containment in its
// facets, name and description. Careers with no hits are omitted. Results are sorted
// by score descending, then by career ID. Unknown keywords yield an empty slice.
func (c *Catalog) Search(keywords []string) []types.SearchHit {
	hits := make([]types.SearchHit, 0)

	for _, id := range c.ids {
		career := c.careers[id]
		name := strings.ToLower(career.Name)
		description := strings.ToLower(career.Description)

		score := 0
		matched := make([]string, 0)
		for _, keyword := range keywords {
			kw := strings.ToLower(strings.TrimSpace(keyword))
			if kw == "" {
				continue
			}
			if containsInAny(kw, career.Interests) {
				score += interestKeywordPoints
				matched = append(matched, fmt.Sprintf("interest: %s", keyword))
			}
			if containsInAny(kw, career.Skills) {
				score += skillKeywordPoints
				matched = append(matched, fmt.Sprintf("skill: %s", keyword))
			}
			if containsInAny(kw, career.Strengths) {
				score += strengthKeywordPoints
				matched = append(matched, fmt.Sprintf("strength: %s", keyword))
			}
			if strings.Contains(name, kw) || strings.Contains(description, kw) {
				score += descriptionKeywordPoints
				matched = append(matched, fmt.Sprintf("description: %s", keyword))
			}
		}

		if score > 0 {
			hits = append(hits, types.SearchHit{
				CareerID:        id,
				Career:          career.Clone(),
				Score:           score,
				MatchedKeywords: matched,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].CareerID < hits[j].CareerID
	})
	return hits
}

// containsInAny reports whether term is a substring of any of the terms.
func containsInAny(term string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}
