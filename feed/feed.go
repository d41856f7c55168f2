package feed

import "strings"

// Header names looked up in the first record, compared case-insensitively.
const (
	ColumnType        = "type"
	ColumnDate        = "date uploaded"
	ColumnContact     = "contact info"
	ColumnDescription = "description"
	ColumnBoard       = "board"
)

// Row is one listing from the sheet.
type Row struct {
	Type        string `json:"type" yaml:"type"`
	Date        string `json:"date" yaml:"date"`
	Phone       string `json:"phone" yaml:"phone"`
	Email       string `json:"email" yaml:"email"`
	Description string `json:"description" yaml:"description"`
	Board       string `json:"board" yaml:"board"`
}

// Result is the parsed feed returned to the front-end.
type Result struct {
	LastUpdated string `json:"lastUpdated" yaml:"lastUpdated"`
	Rows        []Row  `json:"rows" yaml:"rows"`
}

// Empty returns a result with no rows. Rows is non-nil so it encodes as [].
func Empty() Result {
	return Result{Rows: []Row{}}
}

// Extract turns tokenized records into a Result. Record 0 is the header.
// Columns are found by name, so a missing header yields empty cells rather
// than an error. Records with fewer than two fields are skipped.
func Extract(records [][]string) Result {
	if len(records) < 2 {
		return Empty()
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	typeIdx := indexOf(headers, ColumnType)
	dateIdx := indexOf(headers, ColumnDate)
	contactIdx := indexOf(headers, ColumnContact)
	descIdx := indexOf(headers, ColumnDescription)
	boardIdx := indexOf(headers, ColumnBoard)

	res := Empty()
	for _, cols := range records[1:] {
		if len(cols) < 2 {
			continue
		}
		date := cell(cols, dateIdx)
		contact := SplitContact(cell(cols, contactIdx))

		if date != "" && IsMoreRecent(date, res.LastUpdated) {
			res.LastUpdated = date
		}

		res.Rows = append(res.Rows, Row{
			Type:        cell(cols, typeIdx),
			Date:        date,
			Phone:       contact.Phone,
			Email:       contact.Email,
			Description: cell(cols, descIdx),
			Board:       cell(cols, boardIdx),
		})
	}
	return res
}

// Parse tokenizes a CSV export and extracts the feed from it.
func Parse(text string) Result {
	return Extract(ParseCSV(text))
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

// cell returns the trimmed value at idx, or "" when the column is missing.
func cell(cols []string, idx int) string {
	if idx < 0 || idx >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[idx])
}
