package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-matcher/internal/schemas"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Builtin(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, 20, c.Len())
	assert.Same(t, c, Default(), "built-in catalog is constructed once")

	for _, career := range c.All() {
		assert.True(t, career.Matchable(), "career %s must have interests or skills", career.ID)
		assert.NotEmpty(t, career.Name)
		assert.NotEmpty(t, career.Domain)
	}
}

func TestCatalog_AllSortedByID(t *testing.T) {
	careers := Default().All()
	require.NotEmpty(t, careers)
	for i := 1; i < len(careers); i++ {
		assert.Less(t, careers[i-1].ID, careers[i].ID)
	}
}

func TestCatalog_Get(t *testing.T) {
	c := Default()

	career, ok := c.Get("ai_engineer")
	require.True(t, ok)
	assert.Equal(t, "AI Engineer", career.Name)
	assert.Contains(t, career.Interests, "machine_learning")
	assert.Contains(t, career.Skills, "python")

	_, ok = c.Get("AI_ENGINEER")
	assert.False(t, ok, "identities are matched exactly")

	_, ok = c.Get("astronaut")
	assert.False(t, ok)
}

func TestCatalog_GetReturnsCopy(t *testing.T) {
	c := Default()

	career, ok := c.Get("nurse")
	require.True(t, ok)
	career.Skills[0] = "mutated"

	again, _ := c.Get("nurse")
	assert.Equal(t, "patient_care", again.Skills[0])
}

func TestCatalog_ByDomain(t *testing.T) {
	c := Default()

	design := c.ByDomain("Arts & Design")
	ids := make([]string, 0, len(design))
	for _, career := range design {
		ids = append(ids, career.ID)
	}
	assert.Equal(t, []string{"animator", "architect", "graphic_designer", "ux_ui_designer"}, ids)

	assert.Empty(t, c.ByDomain("arts & design"), "domain matching is exact")
	assert.NotNil(t, c.ByDomain("Nope"))
}

func TestCatalog_Domains(t *testing.T) {
	assert.Equal(t, []string{
		"Arts & Design",
		"Business & Finance",
		"Healthcare & Science",
		"Law & Humanities",
		"Management & Leadership",
		"Technology & Engineering",
	}, Default().Domains())
}

func TestCatalog_CertificationsAndProgression(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"CompTIA Security+", "CISSP", "CEH (Certified Ethical Hacker)"}, c.Certifications("cybersecurity_analyst"))
	assert.Equal(t, []string{"Industry-specific certifications"}, c.Certifications("nurse"))

	assert.Len(t, c.Progression("business_analyst"), 4)
	assert.Equal(t, []string{"Entry Level", "Mid Level", "Senior Level", "Management", "Executive"}, c.Progression("lawyer"))

	certs := c.Certifications("nurse")
	certs[0] = "mutated"
	assert.Equal(t, []string{"Industry-specific certifications"}, c.Certifications("nurse"))
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		careers []types.Career
		problem string
	}{
		{
			name:    "missing id",
			careers: []types.Career{{Name: "X", Domain: "D", Skills: []string{"a"}}},
			problem: "ID",
		},
		{
			name:    "no matchable facets",
			careers: []types.Career{{ID: "x", Name: "X", Domain: "D", Strengths: []string{"a"}}},
			problem: "at least one interest or skill",
		},
		{
			name: "duplicate id",
			careers: []types.Career{
				{ID: "x", Name: "X", Domain: "D", Skills: []string{"a"}},
				{ID: "x", Name: "Y", Domain: "D", Skills: []string{"b"}},
			},
			problem: "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.careers)
			require.Error(t, err)
			assert.Nil(t, c)

			var invalid *InvalidCatalogError
			require.True(t, errors.As(err, &invalid))
			require.Len(t, invalid.Problems, 1)
			assert.Contains(t, invalid.Problems[0], tt.problem)
		})
	}
}

func TestNew_CanonicalizesTerms(t *testing.T) {
	c, err := New([]types.Career{
		{ID: " x ", Name: "X", Domain: "D", Interests: []string{" Machine_Learning "}, Skills: []string{"Go"}},
	})
	require.NoError(t, err)

	career, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, []string{"machine_learning"}, career.Interests)
	assert.Equal(t, []string{"go"}, career.Skills)
}

func TestNew_WithTables(t *testing.T) {
	abbreviations := TermTable{"gd": {"graphic_design"}}
	c, err := New([]types.Career{{ID: "x", Name: "X", Domain: "D", Skills: []string{"a"}}},
		WithAbbreviations(abbreviations),
		WithRelatedTerms(TermTable{"plants": {"nature"}}),
		WithCertifications(TermTable{"x": {"Cert X"}}),
		WithProgressions(TermTable{"x": {"Junior X", "Senior X"}}),
	)
	require.NoError(t, err)

	abbreviations["gd"][0] = "mutated"
	expansion, ok := c.Abbreviations().Lookup("gd")
	require.True(t, ok)
	assert.Equal(t, []string{"graphic_design"}, expansion)

	_, ok = c.Abbreviations().Lookup("ai")
	assert.False(t, ok, "custom tables replace the built-in ones")

	related, ok := c.RelatedTerms().Lookup("plants")
	require.True(t, ok)
	assert.Equal(t, []string{"nature"}, related)
	assert.Equal(t, []string{"Cert X"}, c.Certifications("x"))
	assert.Equal(t, []string{"Junior X", "Senior X"}, c.Progression("x"))
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.json")
	content := `{
		"careers": [
			{"id": "gardener", "name": "Gardener", "domain": "Outdoors", "key_interests": ["plants"], "key_skills": ["pruning"]}
		],
		"related_terms": {"nature": ["plants"]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"Outdoors"}, c.Domains())

	related, ok := c.RelatedTerms().Lookup("nature")
	require.True(t, ok)
	assert.Equal(t, []string{"plants"}, related)

	_, ok = c.Abbreviations().Lookup("ai")
	assert.True(t, ok, "tables missing from the file keep their built-in values")
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(filepath.Join(tmpDir, "missing.json"))
	require.Error(t, err)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "failed to read file")

	path := filepath.Join(tmpDir, "invalid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"careers": []}`), 0644))
	_, err = Load(path)
	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	dupPath := filepath.Join(tmpDir, "dup.json")
	dup := `{"careers": [
		{"id": "x", "name": "X", "domain": "D", "key_skills": ["a"]},
		{"id": "x", "name": "Y", "domain": "D", "key_skills": ["b"]}
	]}`
	require.NoError(t, os.WriteFile(dupPath, []byte(dup), 0644))
	_, err = Load(dupPath)
	var invalid *InvalidCatalogError
	assert.True(t, errors.As(err, &invalid))
}

func TestExport_RoundTripsThroughParse(t *testing.T) {
	data, err := json.Marshal(Default().Export())
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().All(), c.All())
}
