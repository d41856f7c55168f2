package feed

import (
	"strings"
	"time"
)

// DateLayouts are the "date uploaded" formats IsMoreRecent understands, tried
// in order. Values without a zone are read as UTC. Cells in any other format
// never win the recency comparison.
//
// TODO: confirm with the sheet owners which formats editors actually type;
// anything beyond this list is ignored for lastUpdated.
var DateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/1/2",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
	"Mon, 02 Jan 2006 15:04:05 MST",
}

// ParseDate parses s using the first matching entry of DateLayouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsMoreRecent reports whether candidate is strictly later than current.
// An empty current always loses, an unparsable candidate never wins and an
// unparsable current loses to any parsable candidate.
func IsMoreRecent(candidate, current string) bool {
	if current == "" {
		return true
	}
	a, ok := ParseDate(candidate)
	if !ok {
		return false
	}
	b, ok := ParseDate(current)
	if !ok {
		return true
	}
	return a.After(b)
}
