package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matsen/authorlist/internal/config"
	"github.com/matsen/authorlist/internal/export"
	"github.com/matsen/authorlist/internal/order"
	"github.com/matsen/authorlist/internal/roster"
	"github.com/spf13/cobra"
)

// Defaults used when neither a flag, the environment, nor the config
// file sets a value.
const (
	defaultUsersCSV       = "Users.csv"
	defaultFuzzyThreshold = 70
)

func runBuild(cmd *cobra.Command, args []string) error {
	inputCSV, outputTeX, outputSheet := args[0], args[1], args[2]

	// Validated before any file I/O.
	if !altFlagsPaired(altAuthorsTeX, altAffiliationsTeX) {
		exitWithError(ExitError, "--alt-authors-tex and --alt-affiliations-tex must be specified together")
	}

	if _, err := config.Load(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	firstTier := mustLoadNameList(firstTierFile)
	infrastructure := mustLoadNameList(infrastructureFile)
	printNameList("First-tier authors", firstTier)
	printNameList("Infrastructure authors", infrastructure)

	ros := mustLoadRoster(inputCSV)
	if err := roster.FillEmails(ros, resolveUsersCSV()); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	res, err := order.Assign(ros, firstTier, infrastructure, order.Options{
		Fuzzy:     !noFuzzyMatching,
		Threshold: resolveFuzzyThreshold(),
		Picker:    newStdinPicker(),
	})
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if err := os.WriteFile(outputTeX, []byte(export.AuthorsTeX(ros, !noOrcidLinks)), 0644); err != nil {
		exitWithError(ExitError, "writing author list: %v", err)
	}
	if err := export.WriteSubmission(ros, outputSheet); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	fmt.Printf("Successfully generated %s and %s\n", outputTeX, outputSheet)
	fmt.Printf("Total authors: %d\n", len(ros.Authors))

	if altAuthorsTeX != "" {
		authors, legend := export.NumberedTeX(ros, !noOrcidLinks)
		if err := os.WriteFile(altAuthorsTeX, []byte(authors), 0644); err != nil {
			exitWithError(ExitError, "writing alternative author list: %v", err)
		}
		if err := os.WriteFile(altAffiliationsTeX, []byte(legend), 0644); err != nil {
			exitWithError(ExitError, "writing affiliation legend: %v", err)
		}
		fmt.Printf("Also generated alternative format: %s and %s\n", altAuthorsTeX, altAffiliationsTeX)
	}

	printUnmatchedReport(res.Unmatched)
	return nil
}

// altFlagsPaired reports whether the alternative-format flags were given
// together or not at all.
func altFlagsPaired(authorsPath, affiliationsPath string) bool {
	return (authorsPath == "") == (affiliationsPath == "")
}

// mustLoadNameList loads a name-list file, exiting on error.
func mustLoadNameList(path string) []string {
	names, err := roster.LoadNameList(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			exitWithError(ExitConfigError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}
	return names
}

// mustLoadRoster loads and normalizes the author table, exiting on error.
func mustLoadRoster(path string) *roster.Roster {
	ros, err := roster.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			exitWithError(ExitConfigError, "%v", err)
		}
		exitWithError(ExitDataError, "%v", err)
	}
	return ros
}

// resolveUsersCSV applies the flag > environment > config file > default
// precedence for the users table path.
func resolveUsersCSV() string {
	if usersCSVFile != "" {
		return usersCSVFile
	}
	if v := config.GetUsersCSV(); v != "" {
		return v
	}
	return defaultUsersCSV
}

// resolveFuzzyThreshold applies the flag > environment > config file >
// default precedence for the fuzzy confidence threshold.
func resolveFuzzyThreshold() int {
	if fuzzyThreshold != 0 {
		return fuzzyThreshold
	}
	if v := config.GetFuzzyThreshold(); v != 0 {
		return v
	}
	return defaultFuzzyThreshold
}
