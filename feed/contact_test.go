package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitContact(t *testing.T) {
	tests := []struct {
		in        string
		wantPhone string
		wantEmail string
	}{
		{"John Doe, 555-123-4567, john@x.com", "555-123-4567", "john@x.com"},
		{"no contact here", "", ""},
		{"", "", ""},
		{"jane.doe+boards@mail.example.org", "", "jane.doe+boards@mail.example.org"},
		{"(555) 123-4567", "(555) 123-4567", ""},
		{"call +1 555 123 4567 or text", "+1 555 123 4567", ""},
		{"ask for me @ the shop", "", "ask for me @ the shop"},
		{"room 12", "room 12", ""},
		{"ext 42", "ext 42", ""},
		{"dm me at @handle", "", "dm me at @handle"},
		{"555-1234 / a@b.co", "555-1234", "a@b.co"},
		{"first@one.com second@two.com", "", "first@one.com"},
		{"111-1111 then 222-2222", "111-1111", ""},
		{"555\u00a0123\u00a04567 a@b.co", "555\u00a0123\u00a04567", "a@b.co"},
		{"tel\u00a0555\u00a0123\u00a04567", "555\u00a0123\u00a04567", ""},
		{"(555)\u2009123\u20094567", "(555)\u2009123\u20094567", ""},
		{"\ufeff555 123 4567\ufeff", "555 123 4567", ""},
		{"555\v123\v4567", "555\v123\v4567", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SplitContact(tt.in)
			assert.Equal(t, tt.wantPhone, got.Phone, "phone")
			assert.Equal(t, tt.wantEmail, got.Email, "email")
		})
	}
}

func TestSplitContact_WhitespaceRunFallsBack(t *testing.T) {
	// seven spaces match the phone pattern but trim to nothing
	got := SplitContact("a       b 9")
	assert.Equal(t, "a       b 9", got.Phone)
	assert.Equal(t, "", got.Email)
}
