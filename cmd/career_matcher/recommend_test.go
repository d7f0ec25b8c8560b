package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecommendations_Text(t *testing.T) {
	var buf bytes.Buffer
	profile := types.Profile{Interests: []string{"ai"}, Skills: []string{"python"}}

	err := writeRecommendations(&buf, recommender.New(nil), profile, 3, formatText)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "CAREER RECOMMENDATIONS")
	assert.Contains(t, output, "AI Engineer")
	assert.NotContains(t, output, "Tell me more")
}

func TestWriteRecommendations_JSON(t *testing.T) {
	var buf bytes.Buffer
	profile := types.Profile{Interests: []string{"ai"}, Skills: []string{"python"}}

	err := writeRecommendations(&buf, recommender.New(nil), profile, 3, formatJSON)
	require.NoError(t, err)

	var resp types.RecommendResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, "ai_engineer", resp.Recommendations[0].CareerID)
	assert.Equal(t, 70, resp.Recommendations[0].MatchScore)
	assert.Equal(t, "data_scientist", resp.Recommendations[1].CareerID)
	assert.False(t, resp.InsufficientProfile)
}

func TestWriteRecommendations_InsufficientProfile(t *testing.T) {
	var buf bytes.Buffer
	profile := types.Profile{Preferences: []string{"remote"}}

	err := writeRecommendations(&buf, recommender.New(nil), profile, 0, formatText)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Tell me more about your interests")
	assert.Contains(t, buf.String(), "No careers matched this profile.")
}

func TestWriteRecommendations_EmptyProfile(t *testing.T) {
	var buf bytes.Buffer

	err := writeRecommendations(&buf, recommender.New(nil), types.Profile{}, 0, formatText)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No profile given.")
	assert.NotContains(t, buf.String(), "Tell me more")
}

func TestWriteScore(t *testing.T) {
	engine := recommender.New(nil)
	profile := types.Profile{Interests: []string{"ai"}, Skills: []string{"python"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeScore(&buf, engine, profile, "ai_engineer", formatJSON))

		var result types.MatchResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "ai_engineer", result.CareerID)
		assert.Equal(t, 70, result.Score)
		assert.Equal(t, 100.0, result.Facets.Interests)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeScore(&buf, engine, profile, "ai_engineer", formatText))
		assert.Contains(t, buf.String(), "MATCH: AI ENGINEER")
	})

	t.Run("unknown career", func(t *testing.T) {
		var buf bytes.Buffer
		err := writeScore(&buf, engine, profile, "astronaut", formatText)
		require.Error(t, err)
		assert.ErrorIs(t, err, recommender.ErrCareerNotFound)
		assert.Empty(t, buf.String())
	})
}

func TestWriteSummary(t *testing.T) {
	engine := recommender.New(nil)
	profile := types.Profile{Interests: []string{"AI"}, Skills: []string{"python"}}

	t.Run("explicit careers", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, engine, profile, []string{"nurse", "unknown"}, formatJSON))

		var summary types.Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
		require.Len(t, summary.Careers, 1)
		assert.Equal(t, "Registered Nurse", summary.Careers[0].Name)
		assert.Equal(t, []string{"ai"}, summary.Profile.Interests)
	})

	t.Run("defaults to top recommendations", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, engine, profile, nil, formatJSON))

		var summary types.Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
		require.Len(t, summary.Careers, 3)
		assert.Equal(t, "ai_engineer", summary.Careers[0].ID)
	})
}
