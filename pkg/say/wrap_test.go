package say

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"empty", "", 10, ""},
		{"fits on one line", "a b", 10, "a b"},
		{"exact fit", "Hello fellow Rustaceans!", 24, "Hello fellow Rustaceans!"},
		{"breaks before overflow", "one two three", 7, "one two\nthree"},
		{"single word per narrow line", "aa bb cc", 2, "aa\nbb\ncc"},
		{"zero width one word per line", "a b c", 0, "a\nb\nc"},
		{"blank paragraph survives", "a\n\nb", 10, "a\n\nb"},
		{"paragraphs wrap independently", "one two\nthree four", 9, "one two\nthree\nfour"},
		{"wide chars measured in columns", "日本 ab", 4, "日本\nab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

// A word wider than the requested width goes on its own line unsplit, so
// the resulting line may exceed the width. Documented behavior, not a bug.
func TestWrapLongWordUnsplit(t *testing.T) {
	got := Wrap("extraordinary magic", 5)
	want := "extraordinary\nmagic"
	if got != want {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}
