package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-matcher/internal/catalog"
	"github.com/spf13/cobra"
)

var exportOut string

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog <path>",
	Short: "Validate a catalog JSON file",
	Long:  "Checks a catalog file against the catalog JSON Schema and the catalog invariants (unique IDs, known domains, complete entries).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateCatalog(cmd.OutOrStdout(), args[0])
	},
}

var exportCatalogCmd = &cobra.Command{
	Use:   "export-catalog",
	Short: "Write the active catalog as JSON",
	Long:  "Writes the active catalog, including its term tables, in the format accepted by --catalog.",
	RunE:  runExportCatalog,
}

func init() {
	exportCatalogCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")

	rootCmd.AddCommand(validateCatalogCmd)
	rootCmd.AddCommand(exportCatalogCmd)
}

func validateCatalog(w io.Writer, path string) error {
	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Catalog %s is valid: %d careers in %d domains\n", path, cat.Len(), len(cat.Domains()))
	return nil
}

func runExportCatalog(cmd *cobra.Command, _ []string) error {
	if exportOut == "" {
		return exportCatalog(cmd.OutOrStdout(), appCtx.engine.Catalog())
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := exportCatalog(f, appCtx.engine.Catalog()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog written to %s\n", exportOut)
	return nil
}

func exportCatalog(w io.Writer, cat *catalog.Catalog) error {
	return writeJSON(w, cat.Export())
}
