package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-matcher/internal/parsing"
	"github.com/jonathan/career-matcher/internal/schemas"
	"github.com/jonathan/career-matcher/internal/types"
	schemafiles "github.com/jonathan/career-matcher/schemas"
	"github.com/spf13/cobra"
)

// profileFlags collects a profile from a profile file, a dialogue slot file
// and inline facet flags. Later sources are merged into earlier ones.
type profileFlags struct {
	profilePath string
	slotsPath   string
	interests   []string
	skills      []string
	strengths   []string
	preferences []string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profilePath, "profile", "", "Path to a profile JSON file")
	cmd.Flags().StringVar(&f.slotsPath, "slots", "", "Path to a JSON file of dialogue slots")
	cmd.Flags().StringSliceVarP(&f.interests, "interests", "i", nil, "Comma-separated interests")
	cmd.Flags().StringSliceVarP(&f.skills, "skills", "s", nil, "Comma-separated skills")
	cmd.Flags().StringSliceVar(&f.strengths, "strengths", nil, "Comma-separated strengths")
	cmd.Flags().StringSliceVarP(&f.preferences, "preferences", "p", nil, "Comma-separated work preferences")
}

func (f *profileFlags) profile() (types.Profile, error) {
	var profile types.Profile

	if f.profilePath != "" {
		if err := schemas.ValidateFile(schemafiles.Profile, f.profilePath); err != nil {
			return types.Profile{}, fmt.Errorf("invalid profile file: %w", err)
		}
		data, err := os.ReadFile(f.profilePath)
		if err != nil {
			return types.Profile{}, fmt.Errorf("failed to read profile file: %w", err)
		}
		if err := json.Unmarshal(data, &profile); err != nil {
			return types.Profile{}, fmt.Errorf("failed to parse profile file: %w", err)
		}
	}

	if f.slotsPath != "" {
		data, err := os.ReadFile(f.slotsPath)
		if err != nil {
			return types.Profile{}, fmt.Errorf("failed to read slots file: %w", err)
		}
		var slots map[string]any
		if err := json.Unmarshal(data, &slots); err != nil {
			return types.Profile{}, fmt.Errorf("failed to parse slots file: %w", err)
		}
		fromSlots, err := parsing.ProfileFromSlots(slots)
		if err != nil {
			return types.Profile{}, err
		}
		profile = parsing.MergeProfiles(profile, fromSlots)
	}

	profile = parsing.MergeProfiles(profile, types.Profile{
		Interests:   f.interests,
		Skills:      f.skills,
		Strengths:   f.strengths,
		Preferences: f.preferences,
	})

	if err := profile.Validate(); err != nil {
		return types.Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}
