package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matsen/authorlist/internal/roster"
)

// NumberedTeX renders the alternative submission format: an author
// block with superscript affiliation numbers, and the matching legend
// listing each affiliation under its number. Affiliations are numbered
// from 1 in order of first appearance across the ordered roster.
func NumberedTeX(ros *roster.Roster, orcidLinks bool) (authors, legend string) {
	ordered, index := affiliationIndex(ros)

	var b strings.Builder
	for _, a := range ros.Authors {
		if orcidLinks && a.ORCID != "" {
			b.WriteString(fmt.Sprintf(`\orcidlink{%s}`, a.ORCID))
		}

		var numbers []string
		for _, affl := range a.Affiliations {
			if affl != "" {
				numbers = append(numbers, strconv.Itoa(index[affl]))
			}
		}
		if len(numbers) > 0 {
			b.WriteString(fmt.Sprintf("%s,$^{%s}$\n", a.Authorname, strings.Join(numbers, ",")))
		} else {
			b.WriteString(a.Authorname + "\n")
		}
	}

	var l strings.Builder
	for i, affl := range ordered {
		l.WriteString(fmt.Sprintf("$^{%d}$ %s \\\\\n", i+1, affl))
	}

	return b.String(), l.String()
}

// affiliationIndex assigns each distinct non-blank affiliation a number
// starting at 1, in order of first appearance.
func affiliationIndex(ros *roster.Roster) ([]string, map[string]int) {
	index := make(map[string]int)
	var ordered []string
	for _, a := range ros.Authors {
		for _, affl := range a.Affiliations {
			if affl == "" {
				continue
			}
			if _, seen := index[affl]; !seen {
				ordered = append(ordered, affl)
				index[affl] = len(ordered)
			}
		}
	}
	return ordered, index
}
