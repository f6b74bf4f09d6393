package say

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap reflows text into lines of at most width display columns using a
// greedy fill: words are packed onto the current line until the next one
// would overflow. Existing line feeds are hard breaks; each paragraph
// wraps independently and blank lines survive as empty lines.
//
// A single word wider than width is placed on its own line unsplit, so a
// line can exceed the requested width. width <= 0 degenerates to one word
// per line.
func Wrap(text string, width int) string {
	paragraphs := strings.Split(text, "\n")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, fill(p, width)...)
	}
	return strings.Join(lines, "\n")
}

// fill packs the words of a single paragraph into lines. An empty
// paragraph yields one empty line.
func fill(paragraph string, width int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	lineWidth := runewidth.StringWidth(line)
	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if lineWidth+1+w > width {
			lines = append(lines, line)
			line = word
			lineWidth = w
			continue
		}
		line += " " + word
		lineWidth += 1 + w
	}
	return append(lines, line)
}
