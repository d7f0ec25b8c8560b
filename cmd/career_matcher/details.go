package main

import (
	"io"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details <career-id>",
	Short: "Show the full catalog entry for a career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDetails(cmd.OutOrStdout(), appCtx.engine, args[0], outputFormat)
	},
}

var learningPathCmd = &cobra.Command{
	Use:   "learning-path <career-id>",
	Short: "Show the three-phase learning path for a career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeLearningPath(cmd.OutOrStdout(), appCtx.engine, args[0], outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(learningPathCmd)
}

func writeDetails(w io.Writer, engine *recommender.Engine, careerID, format string) error {
	career, err := engine.Details(careerID)
	if err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, career)
	}
	observability.NewPrinter(w).PrintCareer(career)
	return nil
}

func writeLearningPath(w io.Writer, engine *recommender.Engine, careerID, format string) error {
	plan, err := engine.LearningPath(careerID)
	if err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, plan)
	}
	observability.NewPrinter(w).PrintLearningPlan(plan)
	return nil
}
