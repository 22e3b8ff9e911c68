package match

import (
	"math"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/matsen/authorlist/internal/roster"
)

// maxCandidates caps how many fuzzy matches are offered per author.
const maxCandidates = 3

// Candidate is a fuzzy match against the roster.
type Candidate struct {
	Authorname string // roster key of the matched entry
	FullName   string // "First Last" form shown to the user
	Confidence int    // similarity score from 0 to 100
}

// Score rates how similar two names are on a 0 to 100 scale. Comparison
// is case-insensitive, collapses runs of whitespace, and ignores word
// order, so "Lange Johannes" and "Johannes Lange" score 100.
func Score(a, b string) int {
	lev := metrics.NewLevenshtein()
	na, nb := normalize(a), normalize(b)
	sim := strutil.Similarity(na, nb, lev)
	if s := strutil.Similarity(sortTokens(na), sortTokens(nb), lev); s > sim {
		sim = s
	}
	return int(math.Round(sim * 100))
}

// Closest returns the best fuzzy matches for name against the roster,
// highest confidence first. At most maxCandidates are kept, and of
// those only the ones scoring at least threshold. Authors that tie keep
// their roster order.
func Closest(name string, ros *roster.Roster, threshold int) []Candidate {
	scored := make([]Candidate, 0, len(ros.Authors))
	for _, a := range ros.Authors {
		full := cleanFirst(a.Firstname) + " " + cleanLast(a.Lastname)
		scored = append(scored, Candidate{
			Authorname: a.Authorname,
			FullName:   full,
			Confidence: Score(name, full),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})
	if len(scored) > maxCandidates {
		scored = scored[:maxCandidates]
	}

	var matches []Candidate
	for _, c := range scored {
		if c.Confidence >= threshold {
			matches = append(matches, c)
		}
	}
	return matches
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func sortTokens(s string) string {
	words := strings.Fields(s)
	sort.Strings(words)
	return strings.Join(words, " ")
}
