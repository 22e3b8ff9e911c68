package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/matsen/authorlist/internal/match"
)

// stdinPicker asks the operator to choose among fuzzy candidates for an
// infrastructure author that did not resolve exactly.
type stdinPicker struct {
	r *bufio.Reader
}

func newStdinPicker() *stdinPicker {
	return &stdinPicker{r: bufio.NewReader(os.Stdin)}
}

// Pick presents the numbered candidates for name and blocks until the
// operator selects one or declines with 0. Invalid input re-prompts; a
// closed input stream aborts instead of looping.
func (p *stdinPicker) Pick(name string, candidates []match.Candidate) (match.Candidate, bool, error) {
	fmt.Printf("\nInfrastructure author '%s' not found exactly.\n", name)
	fmt.Println("Possible matches:")
	for i, c := range candidates {
		fmt.Printf("  %d. %s (confidence: %d%%)\n", i+1, c.FullName, c.Confidence)
	}
	fmt.Println("  0. None of the above (skip this author)")

	for {
		fmt.Printf("Select match (0-%d): ", len(candidates))
		line, err := p.r.ReadString('\n')
		if err != nil && line == "" {
			return match.Candidate{}, false, fmt.Errorf("reading selection: %w", err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			fmt.Println("Please enter a valid number.")
		case choice < 0 || choice > len(candidates):
			fmt.Printf("Please enter a number between 0 and %d.\n", len(candidates))
		case choice == 0:
			fmt.Printf("Skipping '%s' - no match selected.\n", name)
			return match.Candidate{}, false, nil
		default:
			chosen := candidates[choice-1]
			fmt.Printf("Added '%s' as infrastructure author.\n", chosen.FullName)
			return chosen, true, nil
		}

		// The rejected line was the last one in the stream.
		if err != nil {
			return match.Candidate{}, false, fmt.Errorf("reading selection: %w", err)
		}
	}
}
