package say_test

import (
	"os"

	"github.com/crabsay/crabsay/pkg/say"
)

func ExampleSay() {
	_ = say.Say("Hello fellow Rustaceans!", 24, os.Stdout)
	// Output:
	//  __________________________
	// < Hello fellow Rustaceans! >
	//  --------------------------
	//         \
	//          \
	//             _~^~^~_
	//         \) /  o o  \ (/
	//           '_   -   _'
	//           / '-----' \
}

func ExampleSay_multiline() {
	_ = say.Say("this message wraps onto several lines", 12, os.Stdout)
	// Output:
	//  ______________
	// / this message \
	// | wraps onto   |
	// | several      |
	// \ lines        /
	//  --------------
	//         \
	//          \
	//             _~^~^~_
	//         \) /  o o  \ (/
	//           '_   -   _'
	//           / '-----' \
}
