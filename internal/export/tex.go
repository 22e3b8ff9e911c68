// Package export renders the ordered author roster into the journal
// submission formats.
package export

import (
	"fmt"
	"strings"

	"github.com/matsen/authorlist/internal/roster"
)

// AuthorsTeX renders the roster as an AASTeX author block, one author
// per stanza in roster order. Each stanza holds the \author line, one
// \affiliation line per non-blank affiliation, and a trailing blank
// line. Authors with an ORCID carry it in the \author bracket; with
// orcidLinks set they are additionally prefixed with \orcidlink.
func AuthorsTeX(ros *roster.Roster, orcidLinks bool) string {
	var b strings.Builder

	for _, a := range ros.Authors {
		if orcidLinks && a.ORCID != "" {
			b.WriteString(fmt.Sprintf(`\orcidlink{%s}`, a.ORCID))
		}

		if a.ORCID != "" {
			b.WriteString(fmt.Sprintf("\\author[%s]{%s}\n", a.ORCID, a.Authorname))
		} else {
			b.WriteString(fmt.Sprintf("\\author{%s}\n", a.Authorname))
		}

		for _, affl := range a.Affiliations {
			if affl != "" {
				b.WriteString(fmt.Sprintf("\\affiliation{%s}\n", affl))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
