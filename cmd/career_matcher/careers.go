package main

import (
	"io"

	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/spf13/cobra"
)

var careersDomain string

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List careers in the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeCareers(cmd.OutOrStdout(), appCtx.engine, careersDomain, outputFormat)
	},
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List career domains",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeDomains(cmd.OutOrStdout(), appCtx.engine, outputFormat)
	},
}

func init() {
	careersCmd.Flags().StringVar(&careersDomain, "domain", "", "Only list careers in this domain")

	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(domainsCmd)
}

func writeCareers(w io.Writer, engine *recommender.Engine, domain, format string) error {
	careers := engine.Careers(domain)
	if format == formatJSON {
		return writeJSON(w, careers)
	}

	title := "CAREERS"
	if domain != "" {
		title = "CAREERS: " + domain
	}
	observability.NewPrinter(w).PrintCareers(title, careers)
	return nil
}

func writeDomains(w io.Writer, engine *recommender.Engine, format string) error {
	domains := engine.Domains()
	if format == formatJSON {
		return writeJSON(w, domains)
	}
	observability.NewPrinter(w).PrintDomains(domains)
	return nil
}
