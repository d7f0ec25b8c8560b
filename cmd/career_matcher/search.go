package main

import (
	"errors"
	"io"
	"strings"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search <keyword>...",
	Short:   "Search careers by keyword",
	Long:    "Searches career names, descriptions, skills and interests. Arguments may also be comma-separated.",
	Example: "  career_matcher search data analysis\n  career_matcher search data,analysis",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSearch(cmd.OutOrStdout(), appCtx.engine, splitKeywords(args), outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func splitKeywords(args []string) []string {
	var keywords []string
	for _, arg := range args {
		for _, kw := range strings.Split(arg, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords
}

func writeSearch(w io.Writer, engine *recommender.Engine, keywords []string, format string) error {
	if len(keywords) == 0 {
		return errors.New("at least one keyword is required")
	}

	hits := engine.Search(keywords)
	if format == formatJSON {
		if hits == nil {
			hits = []types.SearchHit{}
		}
		return writeJSON(w, hits)
	}
	observability.NewPrinter(w).PrintSearchResults(keywords, hits)
	return nil
}
