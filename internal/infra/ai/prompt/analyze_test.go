package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDocument(t *testing.T) {
	short := "short document"
	assert.Equal(t, short, TruncateDocument(short))

	long := strings.Repeat("x", 5000)
	got := TruncateDocument(long)
	assert.Len(t, got, 4000)
}

func TestTruncateDocument_KeepsRunesIntact(t *testing.T) {
	// '界' is 3 bytes and starts at offset 3999, straddling the cut
	long := strings.Repeat("a", 3999) + strings.Repeat("界", 500)

	got := TruncateDocument(long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 3999), got)
}

func TestGetUserPrompt_TruncatesText(t *testing.T) {
	long := strings.Repeat("a", 4100)
	p := GetUserPrompt("Privacy Policy", long)

	assert.Contains(t, p, "Privacy Policy")
	assert.Contains(t, p, strings.Repeat("a", 4000)+"...")
	assert.NotContains(t, p, strings.Repeat("a", 4001))
	// the prompt asks for the JSON shape the parser expects
	assert.Contains(t, p, `"risks"`)
	assert.Contains(t, p, `"summary"`)
}
