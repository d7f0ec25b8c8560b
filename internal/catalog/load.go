package catalog

import (
	"encoding/json"
	"os"

	"github.com/jonathan/career-matcher/internal/schemas"
	"github.com/jonathan/career-matcher/internal/types"
	schemafiles "github.com/jonathan/career-matcher/schemas"
)

// File is the on-disk JSON representation of a catalog.
// Empty tables keep the built-in ones.
type File struct {
	Careers        []types.Career `json:"careers"`
	Abbreviations  TermTable      `json:"abbreviations,omitempty"`
	RelatedTerms   TermTable      `json:"related_terms,omitempty"`
	Certifications TermTable      `json:"certifications,omitempty"`
	Progressions   TermTable      `json:"progressions,omitempty"`
}

// Load reads, schema-validates and builds a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	c, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid content", Cause: err}
	}
	return c, nil
}

// Parse schema-validates and builds a catalog from JSON content.
func Parse(data []byte) (*Catalog, error) {
	if err := schemas.Validate(schemafiles.Catalog, data); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	var opts []Option
	if len(f.Abbreviations) > 0 {
		opts = append(opts, WithAbbreviations(f.Abbreviations))
	}
	if len(f.RelatedTerms) > 0 {
		opts = append(opts, WithRelatedTerms(f.RelatedTerms))
	}
	if len(f.Certifications) > 0 {
		opts = append(opts, WithCertifications(f.Certifications))
	}
	if len(f.Progressions) > 0 {
		opts = append(opts, WithProgressions(f.Progressions))
	}

	return New(f.Careers, opts...)
}

// Export returns the catalog in its on-disk representation.
func (c *Catalog) Export() File {
	return File{
		Careers:        c.All(),
		Abbreviations:  c.Abbreviations(),
		RelatedTerms:   c.RelatedTerms(),
		Certifications: c.certifications.Clone(),
		Progressions:   c.progressions.Clone(),
	}
}
