package assert

// True panics if b is false. It guards invariants whose violation means a
// programming error rather than bad input.
func True(b bool) {
	if !b {
		panic("assertion failed")
	}
}
