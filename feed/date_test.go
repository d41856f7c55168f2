package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2023-06-15",
		"2023/06/15",
		"6/15/2023",
		"06/15/2023",
		"6/15/23",
		"June 15, 2023",
		"Jun 15, 2023",
		"June 15 2023",
		"15 June 2023",
		"15 Jun 2023",
		"Thu Jun 15 2023",
		"  2023-06-15  ",
	} {
		t.Run(in, func(t *testing.T) {
			got, ok := ParseDate(in)
			if assert.True(t, ok) {
				assert.True(t, want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestParseDate_WithTime(t *testing.T) {
	got, ok := ParseDate("6/15/2023 14:30:05")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, time.June, 15, 14, 30, 5, 0, time.UTC), got)

	got, ok = ParseDate("2023-06-15T14:30:05+02:00")
	assert.True(t, ok)
	assert.True(t, time.Date(2023, time.June, 15, 12, 30, 5, 0, time.UTC).Equal(got))
}

func TestParseDate_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date", "2023-13-01", "yesterday", "15/06/2023"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, in)
	}
}

func TestIsMoreRecent(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		current   string
		want      bool
	}{
		{"empty current bootstraps", "2023-01-01", "", true},
		{"empty current bootstraps even unparsable", "not-a-date", "", true},
		{"later wins", "2023-06-15", "2023-01-01", true},
		{"earlier loses", "2023-01-01", "2023-06-15", false},
		{"tie is not more recent", "2023-06-15", "6/15/2023", false},
		{"unparsable candidate never wins", "not-a-date", "2023-01-01", false},
		{"unparsable current loses", "2023-01-01", "garbage", true},
		{"both unparsable", "foo", "bar", false},
		{"mixed formats", "July 1, 2023", "6/30/2023 23:59:59", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMoreRecent(tt.candidate, tt.current))
		})
	}
}
