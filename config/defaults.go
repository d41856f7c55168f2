package config

import "time"

const (
	// DefaultSheetID is the published the-boards spreadsheet.
	DefaultSheetID = "1eKcJbthQfc4ah8dWf9AiyV0TQ8U-BG-U-2XlT0bpl1c"
	// DefaultSheetGID selects the first tab.
	DefaultSheetGID = "0"
	// DefaultSheetURLTemplate renders the CSV export URL for a sheet tab.
	DefaultSheetURLTemplate = "https://docs.google.com/spreadsheets/d/{{ sheet_id }}/pub?gid={{ gid }}&single=true&output=csv"

	DefaultRepo        = "yuribeats/the-boards"
	DefaultPendingPath = "data/pending.json"
	DefaultBranch      = "main"
	// DefaultContentsURLTemplate renders the GitHub Contents API URL for a file.
	DefaultContentsURLTemplate = "https://api.github.com/repos/{{ repo }}/contents/{{ path }}?ref={{ branch }}"

	// DefaultBlobDir is where feed archives go with the filesystem driver.
	DefaultBlobDir = ".boards/archive"

	DefaultServiceName = "the-boards"

	DefaultHTTPTimeout = 10 * time.Second
)
