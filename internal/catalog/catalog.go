// Package catalog holds the immutable career catalog and its static lookup tables.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/career-matcher/internal/types"
)

// Catalog is a read-only collection of careers plus the term tables used to match them.
// It is safe for concurrent use; nothing mutates it after New returns.
type Catalog struct {
	careers        map[string]types.Career
	ids            []string
	abbreviations  TermTable
	related        TermTable
	certifications TermTable
	progressions   TermTable
}

// Option customizes the tables of a Catalog.
type Option func(*Catalog)

// WithAbbreviations replaces the abbreviation expansion table.
func WithAbbreviations(t TermTable) Option {
	return func(c *Catalog) { c.abbreviations = t.Clone() }
}

// WithRelatedTerms replaces the concept relatedness table.
func WithRelatedTerms(t TermTable) Option {
	return func(c *Catalog) { c.related = t.Clone() }
}

// WithCertifications replaces the per-career certification table.
func WithCertifications(t TermTable) Option {
	return func(c *Catalog) { c.certifications = t.Clone() }
}

// WithProgressions replaces the per-career progression table.
func WithProgressions(t TermTable) Option {
	return func(c *Catalog) { c.progressions = t.Clone() }
}

var builtin = sync.OnceValue(func() *Catalog {
	c, err := New(builtinCareers)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog is invalid: %v", err))
	}
	return c
})

// Default returns the built-in catalog. It is constructed once per process.
func Default() *Catalog {
	return builtin()
}

// New builds a catalog from careers. Facet terms are lowercased and trimmed.
// Returns an *InvalidCatalogError if any career fails validation, has a duplicate ID,
// or has neither interests nor skills.
func New(careers []types.Career, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		careers:        make(map[string]types.Career, len(careers)),
		ids:            make([]string, 0, len(careers)),
		abbreviations:  builtinAbbreviations.Clone(),
		related:        builtinRelatedTerms.Clone(),
		certifications: builtinCertifications.Clone(),
		progressions:   builtinProgressions.Clone(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var problems []string
	for i, career := range careers {
		career = canonicalize(career)
		if err := career.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("careers[%d] (%q): %v", i, career.ID, err))
			continue
		}
		if !career.Matchable() {
			problems = append(problems, fmt.Sprintf("careers[%d] (%q): needs at least one interest or skill", i, career.ID))
			continue
		}
		if _, exists := c.careers[career.ID]; exists {
			problems = append(problems, fmt.Sprintf("careers[%d]: duplicate id %q", i, career.ID))
			continue
		}
		c.careers[career.ID] = career
		c.ids = append(c.ids, career.ID)
	}
	if len(problems) > 0 {
		return nil, &InvalidCatalogError{Problems: problems}
	}

	sort.Strings(c.ids)
	return c, nil
}

func canonicalize(career types.Career) types.Career {
	career = career.Clone()
	career.ID = strings.TrimSpace(career.ID)
	for _, facet := range [][]string{career.Interests, career.Skills, career.Strengths} {
		for i, term := range facet {
			facet[i] = strings.ToLower(strings.TrimSpace(term))
		}
	}
	return career
}

// Len returns the number of careers.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Get returns a copy of the career with the given ID.
func (c *Catalog) Get(id string) (types.Career, bool) {
	career, ok := c.careers[id]
	if !ok {
		return types.Career{}, false
	}
	return career.Clone(), true
}

// All returns copies of every career ordered by ID.
func (c *Catalog) All() []types.Career {
	out := make([]types.Career, 0, len(c.ids))
	for _, id := range c.ids {
		career := c.careers[id]
		out = append(out, career.Clone())
	}
	return out
}

// ByDomain returns the careers whose domain equals domain exactly, ordered by ID.
func (c *Catalog) ByDomain(domain string) []types.Career {
	out := make([]types.Career, 0)
	for _, id := range c.ids {
		if career := c.careers[id]; career.Domain == domain {
			out = append(out, career.Clone())
		}
	}
	return out
}

// Domains returns the distinct domain labels in sorted order.
func (c *Catalog) Domains() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, id := range c.ids {
		domain := c.careers[id].Domain
		if !seen[domain] {
			seen[domain] = true
			out = append(out, domain)
		}
	}
	sort.Strings(out)
	return out
}

// Abbreviations returns a copy of the abbreviation expansion table.
func (c *Catalog) Abbreviations() TermTable {
	return c.abbreviations.Clone()
}

// RelatedTerms returns a copy of the concept relatedness table.
func (c *Catalog) RelatedTerms() TermTable {
	return c.related.Clone()
}

// Certifications returns the recommended certifications for a career,
// or a generic placeholder when the career has no specific entry.
func (c *Catalog) Certifications(id string) []string {
	return lookupOrDefault(c.certifications, id, genericCertifications)
}

// Progression returns the career ladder for a career,
// or a generic five-rung ladder when the career has no specific entry.
func (c *Catalog) Progression(id string) []string {
	return lookupOrDefault(c.progressions, id, genericProgression)
}

func lookupOrDefault(t TermTable, key string, fallback []string) []string {
	src, ok := t.Lookup(key)
	if !ok || len(src) == 0 {
		src = fallback
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
