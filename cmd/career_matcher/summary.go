package main

import (
	"io"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/spf13/cobra"
)

var (
	summaryProfile   profileFlags
	summaryCareerIDs []string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Export a summary of a profile and chosen careers",
	Long: "Builds an exportable snapshot of the profile together with up to three careers. " +
		"When --careers is omitted the top recommendations are used.",
	RunE: runSummary,
}

func init() {
	summaryProfile.register(summaryCmd)
	summaryCmd.Flags().StringSliceVar(&summaryCareerIDs, "careers", nil, "Comma-separated career IDs")

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	profile, err := summaryProfile.profile()
	if err != nil {
		return err
	}
	return writeSummary(cmd.OutOrStdout(), appCtx.engine, profile, summaryCareerIDs, outputFormat)
}

func writeSummary(w io.Writer, engine *recommender.Engine, profile types.Profile, careerIDs []string, format string) error {
	if len(careerIDs) == 0 {
		for _, rec := range engine.Recommend(profile, 0) {
			careerIDs = append(careerIDs, rec.CareerID)
		}
	}

	summary := engine.Summary(profile, careerIDs)
	if format == formatJSON {
		return writeJSON(w, summary)
	}
	observability.NewPrinter(w).PrintSummary(summary)
	return nil
}
