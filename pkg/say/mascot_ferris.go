//go:build !clippy

package say

// defaultMascot is the compile-time mascot choice. Build with -tags clippy
// to swap it.
var defaultMascot = Ferris
