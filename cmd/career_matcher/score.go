package main

import (
	"io"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/spf13/cobra"
)

var scoreProfile profileFlags

var scoreCmd = &cobra.Command{
	Use:   "score <career-id>",
	Short: "Score a profile against one career",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreProfile.register(scoreCmd)

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	profile, err := scoreProfile.profile()
	if err != nil {
		return err
	}
	return writeScore(cmd.OutOrStdout(), appCtx.engine, profile, args[0], outputFormat)
}

func writeScore(w io.Writer, engine *recommender.Engine, profile types.Profile, careerID, format string) error {
	career, err := engine.Details(careerID)
	if err != nil {
		return err
	}
	result, err := engine.Score(profile, careerID)
	if err != nil {
		return err
	}

	if format == formatJSON {
		return writeJSON(w, result)
	}
	observability.NewPrinter(w).PrintMatch(career, result)
	return nil
}
