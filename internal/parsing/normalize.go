package parsing

import (
	"strings"

	"github.com/jonathan/career-matcher/internal/types"
)

// Normalizer expands raw profile tokens into canonical terms using an abbreviation table.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	expansions map[string][]string
}

// NewNormalizer creates a Normalizer over the given expansion table.
// The table is copied; later changes to it are not observed.
func NewNormalizer(expansions map[string][]string) *Normalizer {
	table := make(map[string][]string, len(expansions))
	for raw, terms := range expansions {
		canonical := make([]string, len(terms))
		copy(canonical, terms)
		table[NormalizeTerm(raw)] = canonical
	}
	return &Normalizer{expansions: table}
}

// Normalize returns the canonical terms for a raw token.
// Known abbreviations expand to their table entry verbatim; anything else
// is returned as a single lowercased, trimmed term.
func (n *Normalizer) Normalize(token string) []string {
	term := NormalizeTerm(token)
	if expansion, ok := n.expansions[term]; ok {
		out := make([]string, len(expansion))
		copy(out, expansion)
		return out
	}
	return []string{term}
}

// NormalizeTerm lowercases and trims a single token.
func NormalizeTerm(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// NormalizeTerms lowercases and trims every token, dropping empties and duplicates.
// The first occurrence of each term keeps its position.
func NormalizeTerms(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		term := NormalizeTerm(token)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}
	return out
}

// NormalizeProfile returns a copy of the profile with every facet normalized and de-duplicated.
func NormalizeProfile(p types.Profile) types.Profile {
	return types.Profile{
		Interests:   NormalizeTerms(p.Interests),
		Skills:      NormalizeTerms(p.Skills),
		Strengths:   NormalizeTerms(p.Strengths),
		Preferences: NormalizeTerms(p.Preferences),
	}
}

// MergeProfiles unions incoming facets into current, facet by facet.
// Existing terms keep their order; new terms are appended in arrival order.
func MergeProfiles(current, incoming types.Profile) types.Profile {
	return types.Profile{
		Interests:   NormalizeTerms(append(cloneTerms(current.Interests), incoming.Interests...)),
		Skills:      NormalizeTerms(append(cloneTerms(current.Skills), incoming.Skills...)),
		Strengths:   NormalizeTerms(append(cloneTerms(current.Strengths), incoming.Strengths...)),
		Preferences: NormalizeTerms(append(cloneTerms(current.Preferences), incoming.Preferences...)),
	}
}

func cloneTerms(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
