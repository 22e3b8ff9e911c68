// Package order assigns author-list positions across the three tiers:
// first-tier authors in file order, infrastructure authors alphabetically
// by last name, and everyone else alphabetically by last name.
package order

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/matsen/authorlist/internal/match"
	"github.com/matsen/authorlist/internal/roster"
)

// Picker chooses among fuzzy candidates for an infrastructure author
// that did not resolve exactly. It reports the chosen candidate and
// whether one was chosen at all.
type Picker interface {
	Pick(name string, candidates []match.Candidate) (match.Candidate, bool, error)
}

// Options configures an Assign run.
type Options struct {
	Fuzzy     bool   // offer fuzzy candidates for unresolved infrastructure authors
	Threshold int    // minimum confidence for a fuzzy candidate
	Picker    Picker // consulted when fuzzy candidates exist
}

// Result reports what Assign could not place.
type Result struct {
	Unmatched []string // infrastructure authors left out of the list
}

// Assign orders the roster. First-tier authors take the leading
// positions in the order given; an unresolved first-tier author is an
// error. Infrastructure authors follow, sorted by last name; entries
// that do not resolve exactly go through fuzzy matching when enabled,
// and stay unmatched otherwise. All remaining authors close the list,
// sorted by last name. Afterwards the roster is sorted by position and
// renumbered from 1 with no gaps.
func Assign(ros *roster.Roster, firstTier, infrastructure []string, opts Options) (*Result, error) {
	next := 1

	firstTierResolved := make(map[string]bool)
	for _, name := range firstTier {
		authorname, ok := match.Resolve(name, ros)
		if !ok {
			return nil, fmt.Errorf("first-tier author '%s' not found in author list", name)
		}
		firstTierResolved[authorname] = true
		ros.Find(authorname).Order = next
		next++
	}

	firstTierRaw := make(map[string]bool, len(firstTier))
	for _, name := range firstTier {
		firstTierRaw[name] = true
	}

	type placed struct {
		authorname string
		lastname   string
	}
	var infra []placed
	var unmatched []string

	for _, name := range infrastructure {
		if firstTierRaw[name] {
			continue
		}

		authorname, ok := match.Resolve(name, ros)
		if ok && !firstTierResolved[authorname] {
			infra = append(infra, placed{authorname, ros.Find(authorname).Lastname})
			continue
		}

		matched := false
		if opts.Fuzzy {
			candidates := match.Closest(name, ros, opts.Threshold)
			if len(candidates) > 0 {
				var available []match.Candidate
				for _, c := range candidates {
					if !firstTierResolved[c.Authorname] {
						available = append(available, c)
					}
				}
				if len(available) > 0 {
					choice, chosen, err := opts.Picker.Pick(name, available)
					if err != nil {
						return nil, err
					}
					if chosen {
						infra = append(infra, placed{choice.Authorname, ros.Find(choice.Authorname).Lastname})
						matched = true
					}
				} else {
					log.Warnf("all matches for '%s' are already first-tier authors", name)
				}
			} else {
				log.Warnf("no good match found for infrastructure author '%s'", name)
			}
		} else {
			log.Warnf("infrastructure author '%s' not found exactly (fuzzy matching disabled)", name)
		}
		if !matched {
			unmatched = append(unmatched, name)
		}
	}

	sort.SliceStable(infra, func(i, j int) bool {
		return strings.ToUpper(infra[i].lastname) < strings.ToUpper(infra[j].lastname)
	})
	for _, p := range infra {
		ros.Find(p.authorname).Order = next
		next++
	}

	var remaining []placed
	for _, a := range ros.Authors {
		if a.Order == 0 {
			remaining = append(remaining, placed{a.Authorname, a.Lastname})
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return strings.ToUpper(remaining[i].lastname) < strings.ToUpper(remaining[j].lastname)
	})
	for _, p := range remaining {
		ros.Find(p.authorname).Order = next
		next++
	}

	// Duplicate list entries overwrite earlier positions and leave
	// gaps, so renumber densely once everyone is placed.
	sort.SliceStable(ros.Authors, func(i, j int) bool {
		return ros.Authors[i].Order < ros.Authors[j].Order
	})
	for i := range ros.Authors {
		ros.Authors[i].Order = i + 1
	}

	return &Result{Unmatched: unmatched}, nil
}
