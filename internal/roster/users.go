package roster

import (
	"encoding/csv"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// FillEmails back-fills Email for each author from the users CSV at path.
// The users table keys authors as "Lastname,&nbsp;Firstname" in its Name
// column, using the raw Lastname cell. Authors without exactly one match
// are warned about and left blank. A missing users file is not an error;
// the roster proceeds without emails.
func FillEmails(r *Roster, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("could not find %s, proceeding without emails", path)
			return nil
		}
		return fmt.Errorf("opening users table: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("parsing users table: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("users table %s is empty", path)
	}

	cols, err := columnIndex(rows[0], "users table", "Name", "Email")
	if err != nil {
		return err
	}

	emails := make(map[string][]string)
	for _, row := range rows[1:] {
		name := row[cols["Name"]]
		emails[name] = append(emails[name], row[cols["Email"]])
	}

	for i := range r.Authors {
		a := &r.Authors[i]
		key := a.Lastname + ",&nbsp;" + a.Firstname
		matches := emails[key]
		if len(matches) != 1 {
			log.Warnf("can't find email for %s %s", a.Firstname, a.Lastname)
			continue
		}
		a.Email = matches[0]
	}
	return nil
}
