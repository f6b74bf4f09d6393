package say

// The mascot images. Each carries its own leading and trailing newline so
// the renderer can append it directly after the bottom border.
var (
	// Ferris is the crab, and the default mascot.
	Ferris = []byte(`
        \
         \
            _~^~^~_
        \) /  o o  \ (/
          '_   -   _'
          / '-----' \
`)

	// Clippy is the paper clip, selected with the "clippy" build tag.
	Clippy = []byte(`
        \
         \
            __
           /  \
           |  |
           @  @
           |  |
           || |/
           || ||
           |\_/|
           \___/
`)
)
