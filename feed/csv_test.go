package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV_QuotedFieldRoundTrip(t *testing.T) {
	records := ParseCSV("\"a,b\"\"c\nd\"")
	assert.Equal(t, [][]string{{"a,b\"c\nd"}}, records)
}

func TestParseCSV_BlankLinesDropped(t *testing.T) {
	records := ParseCSV("a,b\n\n\nc,d\n")
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, records)
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "no trailing newline",
			in:   "a,b\nc,d",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "crlf line endings",
			in:   "a,b\r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "bare carriage returns",
			in:   "a,b\rc,d\r",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "whitespace only record dropped",
			in:   "a,b\n  ,\t\nc,d",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "commas only record dropped",
			in:   "a\n,,,\nb",
			want: [][]string{{"a"}, {"b"}},
		},
		{
			name: "empty fields kept when record has content",
			in:   "a,,c\n,b,",
			want: [][]string{{"a", "", "c"}, {"", "b", ""}},
		},
		{
			name: "quoted field with crlf inside",
			in:   "\"line1\r\nline2\",x",
			want: [][]string{{"line1\r\nline2", "x"}},
		},
		{
			name: "escaped quotes only",
			in:   `""""`,
			want: [][]string{{`"`}},
		},
		{
			name: "unterminated quote runs to end of input",
			in:   "\"abc,def\nghi",
			want: [][]string{{"abc,def\nghi"}},
		},
		{
			name: "quote in the middle of a field toggles quoting",
			in:   `ab"c,d"e,f`,
			want: [][]string{{"abc,de", "f"}},
		},
		{
			name: "whitespace preserved inside fields",
			in:   "  a , b  ",
			want: [][]string{{"  a ", " b  "}},
		},
		{
			name: "utf8 passes through",
			in:   "café,naïve\n",
			want: [][]string{{"café", "naïve"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCSV(tt.in))
		})
	}
}
