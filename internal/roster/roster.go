// Package roster loads and normalizes the author table for a paper.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Author is one row of the merged author table.
type Author struct {
	Authorname   string   // display name, unique key after merging
	Firstname    string   // given name(s)
	Lastname     string   // family name, may carry a trailing comma from the export
	ORCID        string   // ORCID iD (without URL prefix), may be empty
	Email        string   // back-filled from the users table, may be empty
	Affiliations []string // input row order; entries may be blank
	Country      string   // carried from the export, unused downstream
	Order        int      // final position in the author list; 0 until assigned
}

// Roster is the merged author table, one entry per distinct Authorname,
// in order of first appearance in the input.
type Roster struct {
	Authors []Author
}

// Load reads the author table CSV at path and merges rows that share an
// Authorname. The export carries one row per (author, affiliation) pair;
// the merged entry keeps the first row's fields and collects every
// Affiliation cell in row order.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening author table: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing author table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("author table %s is empty", path)
	}

	cols, err := columnIndex(rows[0], "author table",
		"Authorname", "Firstname", "Lastname", "Affiliation", "ORCID", "Country")
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	var authors []Author
	for _, row := range rows[1:] {
		name := row[cols["Authorname"]]
		if i, ok := byName[name]; ok {
			authors[i].Affiliations = append(authors[i].Affiliations, row[cols["Affiliation"]])
			continue
		}
		byName[name] = len(authors)
		authors = append(authors, Author{
			Authorname:   name,
			Firstname:    row[cols["Firstname"]],
			Lastname:     row[cols["Lastname"]],
			ORCID:        row[cols["ORCID"]],
			Country:      row[cols["Country"]],
			Affiliations: []string{row[cols["Affiliation"]]},
		})
	}

	for _, a := range authors {
		if a.ORCID != "" && !ValidORCID(a.ORCID) {
			log.Warnf("author %s has a malformed ORCID %q", a.Authorname, a.ORCID)
		}
	}

	return &Roster{Authors: authors}, nil
}

// Find returns the author with the given Authorname, or nil.
func (r *Roster) Find(authorname string) *Author {
	for i := range r.Authors {
		if r.Authors[i].Authorname == authorname {
			return &r.Authors[i]
		}
	}
	return nil
}

// columnIndex maps header names to column positions and checks that every
// required column is present. Header cells are trimmed; names are matched
// exactly.
func columnIndex(header []string, table string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%s is missing required column %q", table, name)
		}
	}
	return idx, nil
}
