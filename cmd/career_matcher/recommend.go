package main

import (
	"fmt"
	"io"

	"github.com/jonathan/career-matcher/internal/logger"
	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recommendProfile profileFlags
	recommendTopN    int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers for a profile",
	Long: "Scores every career in the catalog against the profile and prints the best matches " +
		"with a confidence band and the reasons behind each match.",
	Example: "  career_matcher recommend -i ai,data -s python,sql -p remote --top-n 3",
	RunE:    runRecommend,
}

func init() {
	recommendProfile.register(recommendCmd)
	recommendCmd.Flags().IntVarP(&recommendTopN, "top-n", "n", 0, "Number of recommendations (default from config)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	profile, err := recommendProfile.profile()
	if err != nil {
		return err
	}

	appCtx.log.Debug("recommending",
		zap.String("interests", logger.Terms(profile.Interests, 80)),
		zap.String("skills", logger.Terms(profile.Skills, 80)),
		zap.Int("top_n", recommendTopN),
	)

	return writeRecommendations(cmd.OutOrStdout(), appCtx.engine, profile, recommendTopN, outputFormat)
}

// writeRecommendations ranks careers for profile and writes them in the requested format.
func writeRecommendations(w io.Writer, engine *recommender.Engine, profile types.Profile, topN int, format string) error {
	resp := types.RecommendResponse{
		Recommendations:     engine.Recommend(profile, topN),
		InsufficientProfile: profile.IsInsufficient(),
	}

	if format == formatJSON {
		return writeJSON(w, resp)
	}

	switch {
	case profile.IsEmpty():
		fmt.Fprintln(w, "No profile given. Pass --interests, --skills, --strengths or --preferences.")
	case resp.InsufficientProfile:
		fmt.Fprintln(w, "Tell me more about your interests, skills or strengths for better matches.")
	}
	observability.NewPrinter(w).PrintRecommendations(resp.Recommendations)
	return nil
}
