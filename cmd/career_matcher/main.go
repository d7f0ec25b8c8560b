// Package main provides the career_matcher CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "career_matcher",
	Short: "Career recommendation engine",
	Long: "career_matcher ranks a catalog of careers against a user's interests, skills, strengths and work preferences, " +
		"explains each match, and serves the same operations over a REST API.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to a YAML/JSON/TOML config file")
	flags.StringVarP(&outputFormat, "output", "o", formatText, "Output format: text or json")
	flags.String("catalog", "", "Path to a catalog JSON file (default: built-in catalog)")
	flags.BoolP("debug", "d", false, "Verbose/debug logging")
	flags.BoolP("json", "j", false, "JSON format for logging")

	bindFlag("catalog", flags.Lookup("catalog"))
	bindFlag("log.debug", flags.Lookup("debug"))
	bindFlag("log.json", flags.Lookup("json"))
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
	}
}
