package say

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// options holds per-call rendering configuration.
type options struct {
	mascot []byte
}

// Option customizes a single Say call.
type Option func(*options)

// WithMascot overrides the compile-time mascot for one call. The image
// must carry its own leading and trailing newline, like [Ferris] and
// [Clippy] do.
func WithMascot(image []byte) Option {
	return func(o *options) {
		o.mascot = image
	}
}

// Say writes input, wrapped to at most maxWidth display columns and framed
// in a speech bubble, followed by the mascot, to w.
//
// The whole output is assembled in memory and handed to w in a single
// Write call; the only error Say can return is whatever w returns. Any
// input is accepted, including the empty string (which renders a
// zero-width bubble) and maxWidth 0 (one word per line).
func Say(input string, maxWidth int, w io.Writer, opts ...Option) error {
	o := options{mascot: defaultMascot}
	for _, opt := range opts {
		opt(&o)
	}

	lines := strings.Split(Wrap(Normalize(input), maxWidth), "\n")

	// A trailing newline in the input is a line terminator, not an extra
	// blank row. Interior blank lines stay, and the empty input keeps its
	// single empty row.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var buf bytes.Buffer
	renderBubble(&buf, lines)
	buf.Write(o.mascot)

	_, err := w.Write(buf.Bytes())
	return err
}

// renderBubble draws the bordered box around lines. The box is sized to
// the widest line, measured in display columns, so the right border sits
// in one column even with wide or combining characters in the text.
func renderBubble(buf *bytes.Buffer, lines []string) {
	width := longestLine(lines)

	buf.WriteString(" " + strings.Repeat("_", width+2) + "\n")

	for i, line := range lines {
		left, right := borderTokens(i, len(lines))
		buf.WriteString(left)
		buf.WriteString(line)
		buf.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(line)))
		buf.WriteString(right)
		buf.WriteByte('\n')
	}

	// No trailing newline: the mascot image starts with its own.
	buf.WriteString(" " + strings.Repeat("-", width+2))
}

// borderTokens picks the bracket pair for row i of count rows: angle
// brackets for a lone row, slash shapes for the first and last rows of a
// taller bubble, pipes in between.
func borderTokens(i, count int) (left, right string) {
	switch {
	case count == 1:
		return "< ", " >"
	case i == 0:
		return "/ ", " \\"
	case i == count-1:
		return "\\ ", " /"
	default:
		return "| ", " |"
	}
}

// longestLine returns the maximum display width over lines, 0 when there
// are none.
func longestLine(lines []string) int {
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}
