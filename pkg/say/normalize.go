package say

import (
	"strings"
	"unicode"
)

// Normalize collapses every maximal run of horizontal whitespace into a
// single ASCII space. Line feeds and carriage returns pass through
// untouched and end any run on their own side, so paragraph breaks survive
// for [Wrap] to honor. No leading or trailing trimming happens here.
//
// Normalize is idempotent: already-normalized text comes back unchanged.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteRune(r)
			space = false
		case unicode.IsSpace(r):
			if !space {
				b.WriteByte(' ')
				space = true
			}
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}
