package main

import (
	"fmt"
	"os"
	"strings"
)

// exitWithError writes an error message to stderr and exits with the given code.
func exitWithError(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(code)
}

// printNameList echoes a parsed name list on startup.
func printNameList(label string, names []string) {
	fmt.Printf("%s: %s\n", label, strings.Join(names, ", "))
}

// printUnmatchedReport lists every infrastructure author that was never
// matched to a table row, or confirms that all of them were.
func printUnmatchedReport(unmatched []string) {
	if len(unmatched) == 0 {
		fmt.Println("\nAll infrastructure authors were successfully matched.")
		return
	}
	fmt.Printf("\nInfrastructure authors not found in author list (%d):\n", len(unmatched))
	for _, name := range unmatched {
		fmt.Printf("  - %s\n", name)
	}
}
