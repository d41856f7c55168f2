package feed

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// \s in RE2 is ASCII only; the extra ranges add the Unicode spaces that
	// pasted cells carry (NBSP, thin space, BOM, line separators).
	phonePattern = regexp.MustCompile(`[\d().\-+\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]{7,}`)
	digitPattern = regexp.MustCompile(`\d`)
)

// Contact is a free-text contact cell split into its phone and email parts.
type Contact struct {
	Phone string
	Email string
}

// SplitContact pulls the first email-like and the first phone-like run out of
// a contact string. The two matches are independent and may overlap. When
// neither matches, a string containing "@" is taken whole as the email and
// one containing a digit is taken whole as the phone.
//
// This is a best-effort heuristic; exotic formats (extensions, vanity
// numbers, obfuscated addresses) are not handled.
func SplitContact(contact string) Contact {
	var c Contact
	if m := emailPattern.FindString(contact); m != "" {
		c.Email = m
	}
	if m := phonePattern.FindString(contact); m != "" {
		c.Phone = strings.TrimFunc(m, isSpace)
	}
	if c.Phone == "" && c.Email == "" {
		switch {
		case strings.Contains(contact, "@"):
			c.Email = contact
		case digitPattern.MatchString(contact):
			c.Phone = contact
		}
	}
	return c
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
