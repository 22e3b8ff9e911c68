package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matsen/authorlist/internal/roster"
)

// submissionHeader matches the columns of the AAS journal template.
var submissionHeader = []string{"Order", "Firstname", "Lastname", "Email"}

// WriteSubmission writes the journal submission table for the ordered
// roster to path, one row per author. Paths ending in .xlsx get a
// spreadsheet that pastes straight into the AAS template; anything else
// is written as CSV.
func WriteSubmission(ros *roster.Roster, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeSubmissionXLSX(ros, path)
	}
	return writeSubmissionCSV(ros, path)
}

func writeSubmissionCSV(ros *roster.Roster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating submission table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(submissionHeader); err != nil {
		return fmt.Errorf("writing submission table: %w", err)
	}
	for _, a := range ros.Authors {
		row := []string{strconv.Itoa(a.Order), a.Firstname, a.Lastname, a.Email}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing submission table: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing submission table: %w", err)
	}
	return nil
}

func writeSubmissionXLSX(ros *roster.Roster, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, name := range submissionHeader {
		cell := fmt.Sprintf("%c1", 'A'+col)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("writing submission sheet: %w", err)
		}
	}
	for i, a := range ros.Authors {
		values := []any{a.Order, a.Firstname, a.Lastname, a.Email}
		for col, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing submission sheet: %w", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving submission sheet: %w", err)
	}
	return nil
}
