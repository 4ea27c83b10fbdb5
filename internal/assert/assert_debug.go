//go:build !release

package assert

// Release is false by default; debug builds keep assertions active.
const Release = false
