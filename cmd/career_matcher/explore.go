package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/parsing"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exploreDetails      = "Details"
	exploreLearningPath = "Learning path"
	exploreTellMore     = "Tell me more about myself"
	exploreSummary      = "Show summary"
	exploreExit         = "Exit"
	exploreBack         = "back"
)

var errExploreExit = errors.New("exit requested")

// profileQuestions are asked in order; an empty answer skips the facet.
var profileQuestions = []struct {
	label string
	apply func(p *types.Profile, terms []string)
}{
	{"What are you interested in? (comma-separated)", func(p *types.Profile, t []string) { p.Interests = t }},
	{"What skills do you have?", func(p *types.Profile, t []string) { p.Skills = t }},
	{"What are your strengths?", func(p *types.Profile, t []string) { p.Strengths = t }},
	{"Any work preferences? (remote, travel, leadership, ...)", func(p *types.Profile, t []string) { p.Preferences = t }},
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively build a profile and browse recommendations",
	RunE:  runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	engine := appCtx.engine

	var profile types.Profile
	for {
		incoming, err := askProfile()
		if errors.Is(err, errExploreExit) {
			return nil
		}
		if err != nil {
			return err
		}
		profile = parsing.MergeProfiles(profile, incoming)
		appCtx.log.Debug("profile updated",
			zap.Int("interests", len(profile.Interests)),
			zap.Int("skills", len(profile.Skills)),
			zap.Int("strengths", len(profile.Strengths)),
		)

		if profile.IsInsufficient() {
			fmt.Fprintln(out, "Tell me about at least one interest, skill or strength.")
			continue
		}

		recs := engine.Recommend(profile, 0)
		observability.NewPrinter(out).PrintRecommendations(recs)

		err = browseRecommendations(out, engine, profile, recs)
		if errors.Is(err, errExploreExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func askProfile() (types.Profile, error) {
	var profile types.Profile
	for _, q := range profileQuestions {
		prompt := promptui.Prompt{Label: q.label}
		answer, err := prompt.Run()
		if err != nil {
			return types.Profile{}, exitOnInterrupt(err)
		}
		q.apply(&profile, splitKeywords([]string{answer}))
	}
	return profile, nil
}

// browseRecommendations returns nil when the user asks to extend the profile.
func browseRecommendations(out io.Writer, engine *recommender.Engine, profile types.Profile, recs []types.Recommendation) error {
	for {
		menu := promptui.Select{
			Label: "What next?",
			Items: exploreMenu(recs),
		}
		idx, selected, err := menu.Run()
		if err != nil {
			return exitOnInterrupt(err)
		}

		switch selected {
		case exploreTellMore:
			return nil
		case exploreExit:
			return errExploreExit
		case exploreSummary:
			if err := writeSummary(out, engine, profile, recommendationIDs(recs), formatText); err != nil {
				return err
			}
		default:
			if err := browseCareer(out, engine, recs[idx].CareerID); err != nil {
				return err
			}
		}
	}
}

func browseCareer(out io.Writer, engine *recommender.Engine, careerID string) error {
	actions := promptui.Select{
		Label: careerID,
		Items: []string{exploreDetails, exploreLearningPath, exploreBack},
	}
	_, action, err := actions.Run()
	if err != nil {
		return exitOnInterrupt(err)
	}

	switch action {
	case exploreDetails:
		return writeDetails(out, engine, careerID, formatText)
	case exploreLearningPath:
		return writeLearningPath(out, engine, careerID, formatText)
	}
	return nil
}

// exploreMenu lists one entry per recommendation followed by the fixed actions.
// Recommendation entries come first so the selected index maps onto recs.
func exploreMenu(recs []types.Recommendation) []string {
	items := make([]string, 0, len(recs)+3)
	for _, rec := range recs {
		items = append(items, fmt.Sprintf("%s (%d%%)", rec.CareerName, rec.MatchScore))
	}
	if len(recs) > 0 {
		items = append(items, exploreSummary)
	}
	return append(items, exploreTellMore, exploreExit)
}

func recommendationIDs(recs []types.Recommendation) []string {
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.CareerID)
	}
	return ids
}

func exitOnInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errExploreExit
	}
	return fmt.Errorf("prompt failed: %w", err)
}
