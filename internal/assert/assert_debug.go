//go:build hstring_debug

package assert

// Enabled reports whether debug checks are compiled in.
const Enabled = true

// That panics with msg when cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
