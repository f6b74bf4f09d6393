//go:build clippy

package say

var defaultMascot = Clippy
