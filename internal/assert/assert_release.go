//go:build release

package assert

// Release is true when the binary is built with `-tags release`, which
// turns DEBUG off and lets the compiler strip every guarded assertion.
const Release = true
