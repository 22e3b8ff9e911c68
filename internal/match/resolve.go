// Package match resolves free-form author names against the roster.
package match

import (
	"strings"

	"github.com/matsen/authorlist/internal/roster"
)

// Resolve finds the roster entry whose name cells match the free-form
// name. Every split into a leading first part and trailing last part is
// tried, so "Johannes Ulf Lange" matches both Firstname "Johannes" with
// Lastname "Ulf Lange" and Firstname "Johannes Ulf" with Lastname
// "Lange". Comparison is case-insensitive and tolerates surrounding
// whitespace and a trailing comma in the Lastname cell. Single-word
// names never resolve.
func Resolve(name string, ros *roster.Roster) (string, bool) {
	words := strings.Fields(name)
	if len(words) < 2 {
		return "", false
	}
	for i := 1; i < len(words); i++ {
		first := strings.Join(words[:i], " ")
		last := strings.Join(words[i:], " ")
		for _, a := range ros.Authors {
			if strings.EqualFold(cleanFirst(a.Firstname), first) &&
				strings.EqualFold(cleanLast(a.Lastname), last) {
				return a.Authorname, true
			}
		}
	}
	return "", false
}

func cleanFirst(s string) string {
	return strings.TrimSpace(s)
}

// cleanLast drops the trailing comma some exports leave on the Lastname
// cell.
func cleanLast(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ",")
}
