package match

import (
	"testing"

	"github.com/matsen/authorlist/internal/roster"
)

func testRoster() *roster.Roster {
	return &roster.Roster{Authors: []roster.Author{
		{Authorname: "John Smith", Firstname: "John", Lastname: "Smith"},
		{Authorname: "Jane Doe", Firstname: "Jane", Lastname: "Doe,"},
		{Authorname: "Johannes Ulf Lange", Firstname: "Johannes", Lastname: "Ulf Lange"},
	}}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   string
		wantOK bool
	}{
		{"exact two words", "John Smith", "John Smith", true},
		{"case insensitive", "john SMITH", "John Smith", true},
		{"trailing comma in table", "Jane Doe", "Jane Doe", true},
		{"three words split after first", "Johannes Ulf Lange", "Johannes Ulf Lange", true},
		{"surrounding whitespace", "  John Smith  ", "John Smith", true},
		{"single word", "Smith", "", false},
		{"unknown author", "Alice Jones", "", false},
		{"first name only half matches", "John Doe", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.query, testRoster())
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestResolve_CompoundFirstname(t *testing.T) {
	ros := &roster.Roster{Authors: []roster.Author{
		{Authorname: "Johannes Ulf Lange", Firstname: "Johannes Ulf", Lastname: "Lange"},
	}}

	got, ok := Resolve("Johannes Ulf Lange", ros)
	if !ok || got != "Johannes Ulf Lange" {
		t.Errorf("Resolve() = %q, %v, want Johannes Ulf Lange, true", got, ok)
	}
}

func TestResolve_EarlierSplitWins(t *testing.T) {
	// Split points are tried in order over the whole roster, so the
	// split with the shorter first name wins even when the other
	// candidate comes first in the table.
	ros := &roster.Roster{Authors: []roster.Author{
		{Authorname: "compound first", Firstname: "Johannes Ulf", Lastname: "Lange"},
		{Authorname: "compound last", Firstname: "Johannes", Lastname: "Ulf Lange"},
	}}

	got, ok := Resolve("Johannes Ulf Lange", ros)
	if !ok || got != "compound last" {
		t.Errorf("Resolve() = %q, %v, want compound last, true", got, ok)
	}
}
