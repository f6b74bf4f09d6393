// Package say renders a text message inside an ASCII speech bubble
// followed by an ASCII-art mascot.
//
// # Pipeline
//
// [Say] composes three pure stages. [Normalize] collapses runs of
// horizontal whitespace into single spaces while keeping line breaks.
// [Wrap] reflows the normalized text into lines of at most the requested
// number of display columns. The renderer then measures the wrapped lines,
// draws a box sized to the widest one, and appends the mascot image.
//
// Widths are display columns, not bytes or runes: a full-width CJK glyph
// counts as two columns and a combining mark as zero, so the right border
// of the bubble stays aligned for any input.
//
// # Mascots
//
// Two mascot images exist, [Ferris] and [Clippy]. The default used by
// [Say] is chosen at compile time: builds carrying the "clippy" build tag
// get Clippy, all others get Ferris. [WithMascot] overrides the default
// for a single call.
//
// # Basic Usage
//
//	if err := say.Say("Hello fellow Rustaceans!", 24, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Every function in this package is stateless and reentrant. Concurrent
// calls are safe as long as each call owns its own writer.
package say
