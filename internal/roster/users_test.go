package roster

import (
	"path/filepath"
	"testing"
)

func TestFillEmails(t *testing.T) {
	users := `Name,Email
"Smith,&nbsp;John",jsmith@example.org
"Doe,&nbsp;Jane",jdoe@example.org
`
	path := writeFile(t, t.TempDir(), "Users.csv", users)

	ros := &Roster{Authors: []Author{
		{Authorname: "John Smith", Firstname: "John", Lastname: "Smith"},
		{Authorname: "Jane Doe", Firstname: "Jane", Lastname: "Doe"},
		{Authorname: "Bob Johnson", Firstname: "Bob", Lastname: "Johnson"},
	}}

	if err := FillEmails(ros, path); err != nil {
		t.Fatalf("FillEmails() error = %v", err)
	}

	if got := ros.Authors[0].Email; got != "jsmith@example.org" {
		t.Errorf("Smith email = %q, want jsmith@example.org", got)
	}
	if got := ros.Authors[1].Email; got != "jdoe@example.org" {
		t.Errorf("Doe email = %q, want jdoe@example.org", got)
	}
	if got := ros.Authors[2].Email; got != "" {
		t.Errorf("Johnson email = %q, want empty", got)
	}
}

func TestFillEmails_RawLastnameKey(t *testing.T) {
	// The users table keys on the Lastname cell as exported, trailing
	// comma included.
	users := `Name,Email
"Smith,,&nbsp;John",raw@example.org
`
	path := writeFile(t, t.TempDir(), "Users.csv", users)

	ros := &Roster{Authors: []Author{
		{Authorname: "John Smith", Firstname: "John", Lastname: "Smith,"},
	}}

	if err := FillEmails(ros, path); err != nil {
		t.Fatalf("FillEmails() error = %v", err)
	}
	if got := ros.Authors[0].Email; got != "raw@example.org" {
		t.Errorf("email = %q, want raw@example.org", got)
	}
}

func TestFillEmails_AmbiguousMatch(t *testing.T) {
	users := `Name,Email
"Smith,&nbsp;John",first@example.org
"Smith,&nbsp;John",second@example.org
`
	path := writeFile(t, t.TempDir(), "Users.csv", users)

	ros := &Roster{Authors: []Author{
		{Authorname: "John Smith", Firstname: "John", Lastname: "Smith"},
	}}

	if err := FillEmails(ros, path); err != nil {
		t.Fatalf("FillEmails() error = %v", err)
	}
	if got := ros.Authors[0].Email; got != "" {
		t.Errorf("email = %q, want empty for ambiguous match", got)
	}
}

func TestFillEmails_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Users.csv")

	ros := &Roster{Authors: []Author{
		{Authorname: "John Smith", Firstname: "John", Lastname: "Smith"},
	}}

	// Missing users table is tolerated: the run proceeds without emails.
	if err := FillEmails(ros, path); err != nil {
		t.Fatalf("FillEmails() error = %v, want nil for missing file", err)
	}
	if got := ros.Authors[0].Email; got != "" {
		t.Errorf("email = %q, want empty", got)
	}
}

func TestFillEmails_MissingColumn(t *testing.T) {
	users := `Name,Address
"Smith,&nbsp;John",somewhere
`
	path := writeFile(t, t.TempDir(), "Users.csv", users)

	ros := &Roster{}
	if err := FillEmails(ros, path); err == nil {
		t.Error("FillEmails() expected error for missing Email column")
	}
}
