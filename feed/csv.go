package feed

import "strings"

// ParseCSV splits text into records of fields.
//
// Fields may be wrapped in double quotes, in which case they can contain
// commas, line breaks and doubled quotes (""). Outside quotes a comma ends a
// field and \n, \r or \r\n ends a record. Records where every field is blank
// are dropped, and the trailing record is flushed without a final newline.
func ParseCSV(text string) [][]string {
	var (
		records  [][]string
		current  []string
		field    strings.Builder
		inQuotes bool
	)

	endRecord := func() {
		current = append(current, field.String())
		field.Reset()
		if !isBlank(current) {
			records = append(records, current)
		}
		current = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				field.WriteByte(ch)
			}
			continue
		}
		switch ch {
		case '"':
			inQuotes = true
		case ',':
			current = append(current, field.String())
			field.Reset()
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRecord()
		case '\n':
			endRecord()
		default:
			field.WriteByte(ch)
		}
	}
	endRecord()

	return records
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
