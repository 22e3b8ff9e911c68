// Package main provides the authorlist CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	firstTierFile      string
	infrastructureFile string
	usersCSVFile       string
	altAuthorsTeX      string
	altAffiliationsTeX string
	noFuzzyMatching    bool
	noOrcidLinks       bool
	fuzzyThreshold     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "authorlist <input-csv> <output-tex> <output-sheet>",
	Short: "Assemble the ordered author list for a collaboration paper",
	Long: `authorlist assembles the ordered author list for a collaboration paper.

It reads a tabular author export (one row per author-affiliation pair),
merges the rows of each author, assigns display order in three tiers
(first-tier file order, then infrastructure authors alphabetically, then
everyone else alphabetically), and writes camera-ready TeX plus a
submission spreadsheet. Infrastructure names that do not match a table
row exactly are resolved interactively via fuzzy matching.

Usage:
  authorlist Authors.csv authors.tex submission.csv --first-tier first.txt --infrastructure infra.txt
  authorlist Authors.csv authors.tex submission.xlsx --first-tier first.txt --infrastructure infra.txt \
    --alt-authors-tex alt_authors.tex --alt-affiliations-tex alt_affiliations.tex`,
	Args:          cobra.ExactArgs(3),
	RunE:          runBuild,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for AUTHORLIST_* overrides)
	_ = godotenv.Load()

	rootCmd.Flags().StringVar(&firstTierFile, "first-tier", "", "File listing first-tier authors in order, one per line")
	rootCmd.Flags().StringVar(&infrastructureFile, "infrastructure", "", "File listing infrastructure authors, one per line")
	rootCmd.Flags().StringVar(&usersCSVFile, "users-csv", "", `CSV with Name and Email columns for email lookup (default "Users.csv")`)
	rootCmd.Flags().StringVar(&altAuthorsTeX, "alt-authors-tex", "", "Write a numbered-affiliation author list to this file")
	rootCmd.Flags().StringVar(&altAffiliationsTeX, "alt-affiliations-tex", "", "Write the numbered affiliation legend to this file")
	rootCmd.Flags().BoolVar(&noFuzzyMatching, "no-fuzzy-matching", false, "Disable fuzzy matching for infrastructure authors")
	rootCmd.Flags().BoolVar(&noOrcidLinks, "no-orcid-links", false, "Omit \\orcidlink prefixes from the TeX output")
	rootCmd.Flags().IntVar(&fuzzyThreshold, "fuzzy-threshold", 0, "Minimum confidence for fuzzy matches (default 70)")
	rootCmd.MarkFlagRequired("first-tier")
	rootCmd.MarkFlagRequired("infrastructure")
	rootCmd.Version = Version
}
